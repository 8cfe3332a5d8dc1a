package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoStub là một video trong danh sách phẳng của kênh, chưa có chi tiết.
type VideoStub struct {
	ID    string
	Title string
	URL   string
}

// VideoDetail là metadata đầy đủ của một video.
type VideoDetail struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	Duration    int // giây
	ViewCount   int64
	UploadDate  string // YYYYMMDD
}

type Video struct {
	ID                    *uuid.UUID `json:"id,omitempty"`
	ChannelID             uuid.UUID  `json:"channel_id"`
	VideoID               string     `json:"video_id"`
	Title                 string     `json:"title"`
	Description           *string    `json:"description,omitempty"` // có thể null
	ThumbnailURL          string     `json:"thumbnail_url"`
	Duration              int        `json:"duration"`
	ViewCount             int64      `json:"view_count"`
	PublishedAt           time.Time  `json:"published_at"`
	SourceURL             string     `json:"source_url"`
	TranscriptLanguage    string     `json:"transcript_language"`
	Status                string     `json:"status"` // draft | published | archived
	Transcript            *string    `json:"transcript,omitempty"`
	TranscriptTimestamped *string    `json:"transcript_timestamped,omitempty"`
}
