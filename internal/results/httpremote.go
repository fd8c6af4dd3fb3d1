package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
)

// ResultPayload is the wire shape of a scored result on the remote API.
// The server derives the user from the verified session and assigns the
// row timestamp itself, so neither field appears here.
type ResultPayload struct {
	TestSlug    string `json:"test_slug"`
	TestTitle   string `json:"test_title"`
	ScorePct    int    `json:"score_pct"` // 0-100
	BandTitle   string `json:"band_title"`
	BandSummary string `json:"band_summary"`
	Answers     []*int `json:"answers"`
	AttemptID   string `json:"attempt_id"`
}

// PayloadFor converts a ScoredResult to its wire shape.
func PayloadFor(res ScoredResult) ResultPayload {
	return ResultPayload{
		TestSlug:    res.Slug,
		TestTitle:   res.Title,
		ScorePct:    res.ScorePct(),
		BandTitle:   res.Band.Title,
		BandSummary: res.Band.Summary,
		Answers:     res.Answers,
		AttemptID:   res.AttemptID,
	}
}

// StoredPayload is the wire shape of a persisted row on reads.
type StoredPayload struct {
	UserID      string    `json:"user_id"`
	TestSlug    string    `json:"test_slug"`
	TestTitle   string    `json:"test_title"`
	ScorePct    int       `json:"score_pct"`
	BandTitle   string    `json:"band_title"`
	BandSummary string    `json:"band_summary"`
	Answers     []*int    `json:"answers"`
	AttemptID   string    `json:"attempt_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToStored converts a wire row back to the domain view.
func (p StoredPayload) ToStored() StoredResult {
	return StoredResult{
		UserID:      p.UserID,
		Slug:        p.TestSlug,
		Title:       p.TestTitle,
		ScorePct:    p.ScorePct,
		BandTitle:   p.BandTitle,
		BandSummary: p.BandSummary,
		Answers:     p.Answers,
		AttemptID:   p.AttemptID,
		CreatedAt:   p.CreatedAt,
	}
}

// HTTPRemote is a RemoteStore backed by the oyunsanaa serve API. It is
// the cross-device path; the identity travels as the bearer token that
// the server verifies, and the Identity argument is ignored beyond the
// non-empty check in SaveRemote.
type HTTPRemote struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPRemote creates a client for the API at baseURL, authenticating
// with the given session token.
func NewHTTPRemote(baseURL, token string) *HTTPRemote {
	return &HTTPRemote{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *HTTPRemote) Save(ctx context.Context, _ identity.Identity, res ScoredResult) error {
	body, err := json.Marshal(PayloadFor(res))
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/v1/results", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		return &ErrStoreUnavailable{Err: err}
	}
	defer resp.Body.Close()

	return mapStatus(resp)
}

func (r *HTTPRemote) Latest(ctx context.Context, _ string, slug string) (*StoredResult, error) {
	u := r.baseURL + "/api/v1/results/latest"
	if slug != "" {
		u += "?slug=" + url.QueryEscape(slug)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &ErrStoreUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err := mapStatus(resp); err != nil {
		return nil, err
	}

	var p StoredPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode latest result: %w", err)
	}
	stored := p.ToStored()
	return &stored, nil
}

func (r *HTTPRemote) History(ctx context.Context, _ string, limit int) ([]StoredResult, error) {
	u := fmt.Sprintf("%s/api/v1/results?limit=%d", r.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &ErrStoreUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return nil, err
	}

	var rows []StoredPayload
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	out := make([]StoredResult, len(rows))
	for i, p := range rows {
		out[i] = p.ToStored()
	}
	return out, nil
}

// mapStatus translates HTTP status codes into the persistence error
// taxonomy.
func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return identity.ErrUnauthorized
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidInput, readError(resp.Body))
	default:
		return &ErrStoreUnavailable{Err: fmt.Errorf("remote returned %s: %s", resp.Status, readError(resp.Body))}
	}
}

func readError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil {
		return ""
	}
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(raw))
}
