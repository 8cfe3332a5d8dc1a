package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	CreatorID    uuid.UUID  `json:"creator_id"`
	Type         string     `json:"type"`   // review
	Status       string     `json:"status"` // draft | published | archived
	Language     string     `json:"language"`
	Source       string     `json:"source"`
	Platform     string     `json:"platform"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	SourceURL    string     `json:"source_url"`
	ThumbnailURL string     `json:"thumbnail_url"`
	PublishedAt  time.Time  `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	Transcript   *string    `json:"transcript,omitempty"`
	TranscriptEn *string    `json:"transcript_en,omitempty"`
}
