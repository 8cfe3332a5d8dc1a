package models

// Transcript là phụ đề đã parse của một video: bản thường và bản kèm mốc thời gian.
type Transcript struct {
	Plain       string
	Timestamped string
}
