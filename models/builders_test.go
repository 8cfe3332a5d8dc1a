package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStub() VideoStub {
	return VideoStub{
		ID:    "vid00000001",
		Title: "Đánh giá laptop A",
		URL:   "https://www.youtube.com/watch?v=vid00000001",
	}
}

func sampleDetail() VideoDetail {
	return VideoDetail{
		ID:          "vid00000001",
		Title:       "Đánh giá laptop A",
		Description: "Mô tả chi tiết",
		Thumbnail:   "https://i.ytimg.com/vi/vid00000001/hq720.jpg",
		Duration:    754,
		ViewCount:   123456,
		UploadDate:  "20240115",
	}
}

func TestBuildVideo(t *testing.T) {
	channelUUID := uuid.New()
	v := BuildVideo(channelUUID, sampleStub(), sampleDetail(), nil, "vi")

	assert.Equal(t, channelUUID, v.ChannelID)
	assert.Equal(t, "vid00000001", v.VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid00000001", v.SourceURL)
	assert.Equal(t, "vi", v.TranscriptLanguage)
	assert.Equal(t, "draft", v.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), v.PublishedAt)
	assert.Nil(t, v.Transcript)
	assert.Nil(t, v.TranscriptTimestamped)
}

func TestBuildVideoDescriptionTruncated(t *testing.T) {
	detail := sampleDetail()
	detail.Description = strings.Repeat("ký", 1500) // 3000 ký tự

	v := BuildVideo(uuid.New(), sampleStub(), detail, nil, "vi")

	require.NotNil(t, v.Description)
	assert.Len(t, []rune(*v.Description), 2000)
}

func TestBuildVideoEmptyDescriptionIsNull(t *testing.T) {
	detail := sampleDetail()
	detail.Description = ""

	v := BuildVideo(uuid.New(), sampleStub(), detail, nil, "vi")

	assert.Nil(t, v.Description)
}

func TestBuildVideoDateFallback(t *testing.T) {
	tests := []struct {
		name       string
		uploadDate string
	}{
		{"invalid calendar date", "20240230"},
		{"missing date", ""},
		{"garbage", "hôm qua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := sampleDetail()
			detail.UploadDate = tt.uploadDate

			before := time.Now()
			v := BuildVideo(uuid.New(), sampleStub(), detail, nil, "vi")
			after := time.Now()

			assert.False(t, v.PublishedAt.Before(before))
			assert.False(t, v.PublishedAt.After(after))
		})
	}
}

func TestBuildVideoTranscriptColumns(t *testing.T) {
	tr := &Transcript{Plain: "xin chào", Timestamped: "[00:00] xin chào"}

	v := BuildVideo(uuid.New(), sampleStub(), sampleDetail(), tr, "vi")

	require.NotNil(t, v.Transcript)
	require.NotNil(t, v.TranscriptTimestamped)
	assert.Equal(t, "xin chào", *v.Transcript)
	assert.Equal(t, "[00:00] xin chào", *v.TranscriptTimestamped)
}

func TestBuildPost(t *testing.T) {
	creatorID := uuid.New()
	p := BuildPost(creatorID, sampleStub(), sampleDetail(), nil, "vi")

	assert.Equal(t, creatorID, p.CreatorID)
	assert.Equal(t, "review", p.Type)
	assert.Equal(t, "draft", p.Status)
	assert.Equal(t, "youtube", p.Source)
	assert.Equal(t, "youtube", p.Platform)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid00000001", p.SourceURL)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestBuildPostSummaryTruncated(t *testing.T) {
	detail := sampleDetail()
	detail.Description = strings.Repeat("a", 500)

	p := BuildPost(uuid.New(), sampleStub(), detail, nil, "vi")

	assert.Len(t, []rune(p.Summary), 200)
}

func TestBuildPostEmptySummary(t *testing.T) {
	detail := sampleDetail()
	detail.Description = ""

	p := BuildPost(uuid.New(), sampleStub(), detail, nil, "vi")

	assert.Equal(t, "", p.Summary)
}

func TestBuildPostTranscriptColumnByLanguage(t *testing.T) {
	tr := &Transcript{Plain: "nội dung", Timestamped: "[00:00] nội dung"}

	vi := BuildPost(uuid.New(), sampleStub(), sampleDetail(), tr, "vi")
	require.NotNil(t, vi.Transcript)
	assert.Equal(t, "nội dung", *vi.Transcript)
	assert.Nil(t, vi.TranscriptEn)

	en := BuildPost(uuid.New(), sampleStub(), sampleDetail(), tr, "en")
	require.NotNil(t, en.TranscriptEn)
	assert.Equal(t, "nội dung", *en.TranscriptEn)
	assert.Nil(t, en.Transcript)
}

func TestBuildChannel(t *testing.T) {
	info := ChannelInfo{
		Name:        "Vật Vờ Studio",
		Description: "Kênh review công nghệ",
		Thumbnail:   "https://yt3.ggpht.com/abc",
	}

	ch := BuildChannel("UCEeXA5Tu7n9X5_zkOgGsyww", "vi", info)

	assert.Equal(t, "UCEeXA5Tu7n9X5_zkOgGsyww", ch.ChannelID)
	assert.Equal(t, "Vật Vờ Studio", ch.Name)
	assert.Equal(t, "vat-vo-studio", ch.Slug)
	assert.Equal(t, "vi", ch.Language)
	assert.True(t, ch.IsActive)
	require.NotNil(t, ch.Description)
	assert.Equal(t, "Kênh review công nghệ", *ch.Description)
}

func TestBuildChannelNameFallback(t *testing.T) {
	ch := BuildChannel("UCdxRpD_T4-HzPsely-Fcezw", "vi", ChannelInfo{})

	assert.Equal(t, "UCdxRpD_T4-HzPsely-Fcezw", ch.Name)
	assert.NotEmpty(t, ch.Slug)
	assert.Nil(t, ch.Description)
}

func TestBuildChannelDescriptionTruncated(t *testing.T) {
	info := ChannelInfo{Name: "Kênh", Description: strings.Repeat("d", 800)}

	ch := BuildChannel("UCx", "vi", info)

	require.NotNil(t, ch.Description)
	assert.Len(t, []rune(*ch.Description), 500)
}

func TestBuildCreator(t *testing.T) {
	cr := BuildCreator("Just Josh", "https://www.youtube.com/channel/UCtHm9ai5zSb-yfRnnUBopAg")

	assert.Equal(t, "Just Josh", cr.Name)
	assert.Equal(t, "just-josh", cr.Slug)
	assert.Equal(t, "https://www.youtube.com/channel/UCtHm9ai5zSb-yfRnnUBopAg", cr.ChannelURL)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than limit", "ngắn", 10, "ngắn"},
		{"exactly at limit", "đúng", 4, "đúng"},
		{"cut at rune boundary", "một hai ba", 7, "một hai"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}
