package store

import (
	"context"
	"fmt"

	"github.com/oyunsanaa/oyunsanaa/ent"
	"github.com/oyunsanaa/oyunsanaa/ent/moodevent"
)

type moodRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *moodRepo) Append(ctx context.Context, userID string, score int, note string) error {
	if userID == "" {
		return fmt.Errorf("append mood event: missing user id")
	}
	if score < 1 || score > 5 {
		return fmt.Errorf("append mood event: score %d out of range [1,5]", score)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MoodEvent.Create().
		SetSequence(seqNum).
		SetUserID(userID).
		SetScore(score)
	if note != "" {
		builder = builder.SetNote(note)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save mood event: %w", err)
	}
	return nil
}

func (r *moodRepo) Recent(ctx context.Context, userID string, limit int) ([]MoodEntry, error) {
	q := r.client.MoodEvent.Query().
		Where(moodevent.UserID(userID)).
		Order(ent.Desc(moodevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mood events: %w", err)
	}

	entries := make([]MoodEntry, 0, len(events))
	for _, me := range events {
		entries = append(entries, MoodEntry{
			Sequence:  me.Sequence,
			UserID:    me.UserID,
			Score:     me.Score,
			Note:      me.Note,
			CreatedAt: me.CreatedAt,
		})
	}
	return entries, nil
}
