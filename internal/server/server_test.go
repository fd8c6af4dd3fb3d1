package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	verifier := identity.NewStaticVerifier(map[string]identity.Identity{
		"tok-u1": {ID: "u1", Email: "u1@example.com"},
		"tok-u2": {ID: "u2"},
	})

	srv := New(DefaultConfig(), st.ResultRepo(), st.MoodRepo(), verifier)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// remote builds the same client the TUI uses, so these tests exercise
// both ends of the wire contract at once.
func remote(ts *httptest.Server, token string) *results.HTTPRemote {
	return results.NewHTTPRemote(ts.URL, token)
}

func sampleScored(slug, attemptID string) results.ScoredResult {
	w := 3
	return results.ScoredResult{
		Slug:       slug,
		Title:      "Sample Check",
		Percentage: 0.62,
		Band: catalog.Band{
			Threshold: 0.5,
			Title:     "Steady",
			Summary:   "Holding steady.",
		},
		Answers:   []*int{&w, nil},
		AttemptID: attemptID,
	}
}

func authedRequest(ctx context.Context, method, url, body, token string) (*http.Request, error) {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

func TestSaveAndLatestRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "tok-u1")
	ctx := context.Background()

	err := r.Save(ctx, identity.Identity{ID: "u1"}, sampleScored("check", "a1"))
	require.NoError(t, err)

	row, err := r.Latest(ctx, "u1", "check")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, 62, row.ScorePct)
	assert.Equal(t, "Steady", row.BandTitle)
	require.Len(t, row.Answers, 2)
	assert.Nil(t, row.Answers[1])
}

func TestLatestAbsentIsNil(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "tok-u1")

	row, err := r.Latest(context.Background(), "u1", "never-taken")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestRejectsMissingToken(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "")

	err := r.Save(context.Background(), identity.Identity{ID: "u1"}, sampleScored("check", "a1"))
	assert.ErrorIs(t, err, identity.ErrUnauthorized)
}

func TestRejectsUnknownToken(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "tok-stale")

	err := r.Save(context.Background(), identity.Identity{ID: "u1"}, sampleScored("check", "a1"))
	assert.ErrorIs(t, err, identity.ErrUnauthorized)
}

func TestRejectsInvalidPayload(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "tok-u1")

	bad := sampleScored("", "a1")
	err := r.Save(context.Background(), identity.Identity{ID: "u1"}, bad)
	assert.ErrorIs(t, err, results.ErrInvalidInput)
}

func TestHistoryIsPerUser(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, remote(ts, "tok-u1").Save(ctx, identity.Identity{ID: "u1"}, sampleScored("check", "a1")))
	require.NoError(t, remote(ts, "tok-u2").Save(ctx, identity.Identity{ID: "u2"}, sampleScored("check", "a2")))

	rows, err := remote(ts, "tok-u1").History(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0].UserID)
}

func TestResubmitSameAttemptIsIdempotent(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "tok-u1")
	ctx := context.Background()

	res := sampleScored("check", "a1")
	require.NoError(t, r.Save(ctx, identity.Identity{ID: "u1"}, res))
	require.NoError(t, r.Save(ctx, identity.Identity{ID: "u1"}, res))

	rows, err := r.History(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLatestWithoutSlugSpansInstruments(t *testing.T) {
	ts := newTestServer(t)
	r := remote(ts, "tok-u1")
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, identity.Identity{ID: "u1"}, sampleScored("check", "a1")))
	require.NoError(t, r.Save(ctx, identity.Identity{ID: "u1"}, sampleScored("other", "a2")))

	row, err := r.Latest(ctx, "u1", "")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "other", row.Slug)
}

func TestSaveIgnoresClientCreatedAt(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	body := `{"test_slug":"check","test_title":"Sample Check","score_pct":62,` +
		`"band_title":"Steady","attempt_id":"a1","created_at":"1999-01-01T00:00:00Z"}`
	req, err := authedRequest(ctx, http.MethodPost, ts.URL+"/api/v1/results", body, "tok-u1")
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	row, err := remote(ts, "tok-u1").Latest(ctx, "u1", "check")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.WithinDuration(t, time.Now(), row.CreatedAt, time.Minute,
		"created_at must be assigned by the server, not the client")
}

func TestRejectsNonJSONBody(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ts.URL+"/api/v1/results", strings.NewReader("slug=check"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer tok-u1")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestHealthzIsPublic(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMoodRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := ts.Client()
	post := func(body string) int {
		req, err := authedRequest(ctx, http.MethodPost, ts.URL+"/api/v1/moods", body, "tok-u1")
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusCreated, post(`{"score":4,"note":"slept well"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"score":9}`))
	assert.Equal(t, http.StatusBadRequest, post(`not json`))

	req, err := authedRequest(ctx, http.MethodGet, ts.URL+"/api/v1/moods?limit=10", "", "tok-u1")
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
