package domain

import "time"

// GenerationRecord is a stored successful generation, replayable by ID.
type GenerationRecord struct {
	ID              string         `json:"id"`
	Kind            ContentKind    `json:"kind"`
	Language        string         `json:"language"`
	ExperienceYears int            `json:"experience"`
	Username        string         `json:"username"`
	Model           string         `json:"model"`
	CreatedAt       time.Time      `json:"created_at"`
	Response        *FinalResponse `json:"response"`
}
