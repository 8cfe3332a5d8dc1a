package utils

import (
	"encoding/json"
	"fmt"

	supabase "github.com/supabase-community/supabase-go"

	"github.com/duongthien408-create/youtube-crawl/models"
)

// Supabase wraps the PostgREST client for the content tables
// (channels, creators, videos, posts).
// Rows are only ever selected and inserted, never updated or deleted.
type Supabase struct {
	client *supabase.Client
}

// NewSupabase creates a database handle from the project URL and API key.
// The handle is created once at startup and passed around explicitly.
func NewSupabase(url, key string) (*Supabase, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("không khởi tạo được Supabase client: %w", err)
	}
	return &Supabase{client: client}, nil
}

// FindChannel returns the channel row with the given YouTube channel ID,
// or nil when no row matches.
func (s *Supabase) FindChannel(channelID string) (*models.Channel, error) {
	var rows []models.Channel
	_, err := s.client.From("channels").
		Select("*", "", false).
		Eq("channel_id", channelID).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("select channels: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// CreateChannel inserts a channel row and returns it with the generated ID.
func (s *Supabase) CreateChannel(ch models.Channel) (*models.Channel, error) {
	data, _, err := s.client.From("channels").
		Insert(ch, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert channels: %w", err)
	}
	var rows []models.Channel
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse insert response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert channels: no row returned")
	}
	return &rows[0], nil
}

// FindCreator returns the creator row with the given name, or nil.
func (s *Supabase) FindCreator(name string) (*models.Creator, error) {
	var rows []models.Creator
	_, err := s.client.From("creators").
		Select("*", "", false).
		Eq("name", name).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("select creators: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// CreateCreator inserts a creator row and returns it with the generated ID.
func (s *Supabase) CreateCreator(cr models.Creator) (*models.Creator, error) {
	data, _, err := s.client.From("creators").
		Insert(cr, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert creators: %w", err)
	}
	var rows []models.Creator
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse insert response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert creators: no row returned")
	}
	return &rows[0], nil
}

// VideoExists reports whether a video row with this YouTube video ID
// is already stored.
func (s *Supabase) VideoExists(videoID string) (bool, error) {
	var rows []models.Video
	_, err := s.client.From("videos").
		Select("id", "", false).
		Eq("video_id", videoID).
		ExecuteTo(&rows)
	if err != nil {
		return false, fmt.Errorf("select videos: %w", err)
	}
	return len(rows) > 0, nil
}

// InsertVideo inserts a video row and returns it with the generated ID.
func (s *Supabase) InsertVideo(v models.Video) (*models.Video, error) {
	data, _, err := s.client.From("videos").
		Insert(v, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert videos: %w", err)
	}
	var rows []models.Video
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse insert response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert videos: no row returned")
	}
	return &rows[0], nil
}

// PostExists reports whether a post row with this source URL is already
// stored. Posts are keyed by source URL, not by video ID.
func (s *Supabase) PostExists(sourceURL string) (bool, error) {
	var rows []models.Post
	_, err := s.client.From("posts").
		Select("id", "", false).
		Eq("source_url", sourceURL).
		ExecuteTo(&rows)
	if err != nil {
		return false, fmt.Errorf("select posts: %w", err)
	}
	return len(rows) > 0, nil
}

// InsertPost inserts a post row and returns it with the generated ID.
func (s *Supabase) InsertPost(p models.Post) (*models.Post, error) {
	data, _, err := s.client.From("posts").
		Insert(p, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert posts: %w", err)
	}
	var rows []models.Post
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse insert response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert posts: no row returned")
	}
	return &rows[0], nil
}
