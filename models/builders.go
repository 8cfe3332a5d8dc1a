package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// BuildChannel dựng bản ghi kênh từ metadata yt-dlp.
// Không có tên thì dùng luôn channel ID.
func BuildChannel(channelID, language string, info ChannelInfo) Channel {
	name := info.Name
	if name == "" {
		name = channelID
	}
	return Channel{
		ChannelID:    channelID,
		Name:         name,
		Slug:         slug.Make(name),
		Description:  nullable(Truncate(info.Description, 500)),
		ThumbnailURL: info.Thumbnail,
		Language:     language,
		IsActive:     true,
	}
}

// BuildCreator dựng bản ghi creator cho schema cũ.
func BuildCreator(name, channelURL string) Creator {
	return Creator{
		Name:       name,
		Slug:       slug.Make(name),
		ChannelURL: channelURL,
	}
}

// BuildVideo dựng bản ghi video cho bảng videos.
// Transcript nil thì hai cột transcript bỏ trống.
func BuildVideo(channelID uuid.UUID, stub VideoStub, detail VideoDetail, tr *Transcript, language string) Video {
	v := Video{
		ChannelID:          channelID,
		VideoID:            detail.ID,
		Title:              detail.Title,
		Description:        nullable(Truncate(detail.Description, 2000)),
		ThumbnailURL:       detail.Thumbnail,
		Duration:           detail.Duration,
		ViewCount:          detail.ViewCount,
		PublishedAt:        parseUploadDate(detail.UploadDate),
		SourceURL:          stub.URL,
		TranscriptLanguage: language,
		Status:             "draft",
	}
	if tr != nil {
		v.Transcript = &tr.Plain
		v.TranscriptTimestamped = &tr.Timestamped
	}
	return v
}

// BuildPost dựng bản ghi post cho schema cũ. Transcript tiếng Việt vào cột
// transcript, ngôn ngữ khác vào transcript_en.
func BuildPost(creatorID uuid.UUID, stub VideoStub, detail VideoDetail, tr *Transcript, language string) Post {
	p := Post{
		CreatorID:    creatorID,
		Type:         "review",
		Status:       "draft",
		Language:     language,
		Source:       "youtube",
		Platform:     "youtube",
		Title:        detail.Title,
		Summary:      Truncate(detail.Description, 200),
		SourceURL:    stub.URL,
		ThumbnailURL: detail.Thumbnail,
		PublishedAt:  parseUploadDate(detail.UploadDate),
		CreatedAt:    time.Now(),
	}
	if tr != nil {
		if language == "vi" {
			p.Transcript = &tr.Plain
		} else {
			p.TranscriptEn = &tr.Plain
		}
	}
	return p
}

// Truncate cắt chuỗi theo số ký tự (rune), dùng cho các cột có giới hạn độ dài.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// parseUploadDate đọc ngày dạng YYYYMMDD của yt-dlp.
// Thiếu hoặc sai định dạng thì lấy thời điểm hiện tại.
func parseUploadDate(s string) time.Time {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Now()
	}
	return t
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
