package store

import (
	"context"
	"time"
)

// MoodEntry is one mood check-in row.
type MoodEntry struct {
	Sequence  int64
	UserID    string
	Score     int // 1 (low) to 5 (high)
	Note      string
	CreatedAt time.Time
}

// MoodRepo provides append and query access to mood check-ins.
type MoodRepo interface {
	// Append records a new check-in. Score must be in [1,5].
	Append(ctx context.Context, userID string, score int, note string) error

	// Recent returns the newest check-ins for userID, newest first.
	// limit <= 0 means no limit.
	Recent(ctx context.Context, userID string, limit int) ([]MoodEntry, error)
}
