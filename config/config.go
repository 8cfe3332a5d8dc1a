package config

import (
	"fmt"
	"os"
)

// Settings là cấu hình Supabase đọc từ biến môi trường.
type Settings struct {
	SupabaseURL string
	SupabaseKey string
}

// Load đọc cấu hình từ biến môi trường.
// SUPABASE_URL và SUPABASE_KEY là bắt buộc.
func Load() (Settings, error) {
	s := Settings{
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
	}
	if s.SupabaseURL == "" || s.SupabaseKey == "" {
		return Settings{}, fmt.Errorf("SUPABASE_URL hoặc SUPABASE_KEY chưa cấu hình")
	}
	return s, nil
}
