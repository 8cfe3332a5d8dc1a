package models

import (
	"github.com/google/uuid"
)

// ChannelInfo là metadata kênh đọc từ yt-dlp, trước khi dựng bản ghi DB.
type ChannelInfo struct {
	Name        string
	Description string
	Thumbnail   string
}

type Channel struct {
	ID           *uuid.UUID `json:"id,omitempty"` // DB sinh, bỏ trống khi insert
	ChannelID    string     `json:"channel_id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description,omitempty"` // có thể null
	ThumbnailURL string     `json:"thumbnail_url"`
	Language     string     `json:"language"`
	IsActive     bool       `json:"is_active"`
}
