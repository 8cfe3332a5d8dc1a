package models

import (
	"github.com/google/uuid"
)

type Creator struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	ChannelURL string     `json:"channel_url"`
}
