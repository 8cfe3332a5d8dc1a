package config

// ChannelSeed là một kênh YouTube trong danh sách thu thập cố định.
type ChannelSeed struct {
	Name      string
	ChannelID string
}

// Kênh công nghệ tiếng Việt.
var ChannelsVI = []ChannelSeed{
	{Name: "GEARVN", ChannelID: "UCdxRpD_T4-HzPsely-Fcezw"},
	{Name: "Nguoi Choi Do", ChannelID: "UC3HxHh_jezfVCcXNCyDJHOQ"},
	{Name: "GenZ Viet", ChannelID: "UCMSDj69umhJodE1BLJNxYIw"},
	{Name: "Vinh Xo", ChannelID: "UCyqxvGyF5LO67HI6vdE5bfQ"},
	{Name: "Vat Vo Studio", ChannelID: "UCEeXA5Tu7n9X5_zkOgGsyww"},
	{Name: "Binh Bear", ChannelID: "UCTymg6O7vl87L0c5SdZVAeQ"},
	{Name: "Tai Xai Tech", ChannelID: "UCiYYo7oPjA_MQ9i7-zoNfGA"},
}

// Kênh công nghệ tiếng Anh.
var ChannelsEN = []ChannelSeed{
	{Name: "Just Josh", ChannelID: "UCtHm9ai5zSb-yfRnnUBopAg"},
	{Name: "Jarrod's Tech", ChannelID: "UC2Rzju32yQPkQ7oIhmeuLwg"},
	{Name: "NoodleNick", ChannelID: "UCthAJeiDA_7iKyzYElbrgjg"},
}
