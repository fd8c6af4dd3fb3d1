package store

import (
	"context"
	"fmt"

	"github.com/oyunsanaa/oyunsanaa/ent"
	"github.com/oyunsanaa/oyunsanaa/ent/resultevent"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
)

// ResultRepo is the durable, append-only result store. It satisfies
// results.RemoteStore so the same write path serves both the embedded
// SQLite store and the HTTP API handlers that front it.
type ResultRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ results.RemoteStore = (*ResultRepo)(nil)

// Save appends one immutable result row. A resubmission of the same
// attempt (same user, slug and attempt id) is treated as already
// applied and returns nil without writing a second row.
func (r *ResultRepo) Save(ctx context.Context, id identity.Identity, res results.ScoredResult) error {
	if id.ID == "" {
		return identity.ErrUnauthorized
	}
	if err := res.Validate(); err != nil {
		return err
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &results.ErrStoreUnavailable{Err: err}
	}

	builder := r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetUserID(id.ID).
		SetTestSlug(res.Slug).
		SetTestTitle(res.Title).
		SetScorePct(res.ScorePct()).
		SetBandTitle(res.Band.Title).
		SetBandSummary(res.Band.Summary).
		SetAttemptID(res.AttemptID)

	if len(res.Answers) > 0 {
		builder = builder.SetAnswers(res.Answers)
	}
	// created_at is assigned by the store, never taken from the caller:
	// history dates must reflect when the row became durable.

	_, err = builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Duplicate attempt id for this user and slug: the row is
			// already durable, so the resubmission is a no-op.
			return nil
		}
		return &results.ErrStoreUnavailable{Err: fmt.Errorf("save result event: %w", err)}
	}
	return nil
}

// Latest returns the newest stored result for userID, or nil when none
// exists. An empty slug matches any instrument.
func (r *ResultRepo) Latest(ctx context.Context, userID, slug string) (*results.StoredResult, error) {
	q := r.client.ResultEvent.Query().
		Where(resultevent.UserID(userID))
	if slug != "" {
		q = q.Where(resultevent.TestSlug(slug))
	}
	re, err := q.
		Order(ent.Desc(resultevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &results.ErrStoreUnavailable{Err: fmt.Errorf("query latest result: %w", err)}
	}
	row := toStoredResult(re)
	return &row, nil
}

// History returns the user's stored results, newest first.
// limit <= 0 means no limit.
func (r *ResultRepo) History(ctx context.Context, userID string, limit int) ([]results.StoredResult, error) {
	q := r.client.ResultEvent.Query().
		Where(resultevent.UserID(userID)).
		Order(ent.Desc(resultevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, &results.ErrStoreUnavailable{Err: fmt.Errorf("query result history: %w", err)}
	}

	rows := make([]results.StoredResult, 0, len(events))
	for _, re := range events {
		rows = append(rows, toStoredResult(re))
	}
	return rows, nil
}

func toStoredResult(re *ent.ResultEvent) results.StoredResult {
	return results.StoredResult{
		UserID:      re.UserID,
		Slug:        re.TestSlug,
		Title:       re.TestTitle,
		ScorePct:    re.ScorePct,
		BandTitle:   re.BandTitle,
		BandSummary: re.BandSummary,
		Answers:     re.Answers,
		AttemptID:   re.AttemptID,
		CreatedAt:   re.CreatedAt,
	}
}
