package plan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourishcoach/internal/kvstore"
	"nourishcoach/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func upstreamReturning(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateUsesUpstream(t *testing.T) {
	srv := upstreamReturning(t, http.StatusOK,
		`{"period":"daily","daily":[{"time":"9:00 AM","meal":"Poha","kcal":300}]}`)

	store := kvstore.NewMemory()
	svc := NewService(&Client{BaseURL: srv.URL, Timeout: time.Second}, store)

	plan, source, err := svc.Generate(context.Background(), "fat loss plan", PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, SourceAPI, source)
	require.Len(t, plan.Daily, 1)
	assert.Equal(t, "Poha", plan.Daily[0].Meal)
}

func TestGenerateFallsBackOnErrorStatus(t *testing.T) {
	srv := upstreamReturning(t, http.StatusInternalServerError, `upstream exploded`)

	svc := NewService(&Client{BaseURL: srv.URL, Timeout: time.Second}, kvstore.NewMemory())

	plan, source, err := svc.Generate(context.Background(), "", PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, source)
	assert.Len(t, plan.Weekly, 7)
}

func TestGenerateFallsBackOnMalformedBody(t *testing.T) {
	srv := upstreamReturning(t, http.StatusOK, `{"period":"daily","daily":`)

	svc := NewService(&Client{BaseURL: srv.URL, Timeout: time.Second}, kvstore.NewMemory())

	plan, source, err := svc.Generate(context.Background(), "", PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, source)
	assert.True(t, plan.Valid())
}

func TestGenerateFallsBackOnWrongShape(t *testing.T) {
	// Upstream answers with a weekly payload to a daily request.
	srv := upstreamReturning(t, http.StatusOK,
		`{"period":"weekly","weekly":[{"day":"Mon","meals":[{"time":"9:00 AM","meal":"Poha","kcal":300}]}]}`)

	svc := NewService(&Client{BaseURL: srv.URL, Timeout: time.Second}, kvstore.NewMemory())

	plan, source, err := svc.Generate(context.Background(), "", PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, source)
	assert.Equal(t, PeriodDaily, plan.Period)
}

func TestGenerateFallsBackOnUnreachableUpstream(t *testing.T) {
	svc := NewService(&Client{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, kvstore.NewMemory())

	plan, source, err := svc.Generate(context.Background(), "", PeriodMonthly)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, source)
	assert.Len(t, plan.Monthly, 4)
}

func TestGenerateFallsBackOnSlowUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	svc := NewService(&Client{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, kvstore.NewMemory())

	start := time.Now()
	plan, source, err := svc.Generate(context.Background(), "", PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, source)
	assert.True(t, plan.Valid())
	assert.Less(t, time.Since(start), time.Second)
}

func TestGenerateWithoutConfiguredUpstream(t *testing.T) {
	svc := NewService(&Client{}, kvstore.NewMemory())

	plan, source, err := svc.Generate(context.Background(), "", PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, source)
	assert.True(t, plan.Valid())
}

func TestGeneratePersistsLastPlan(t *testing.T) {
	store := kvstore.NewMemory()
	svc := NewService(&Client{}, store)

	generated, _, err := svc.Generate(context.Background(), "", PeriodWeekly)
	require.NoError(t, err)

	last, err := svc.LastPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, generated, last)

	// A newer plan replaces the stored one.
	_, _, err = svc.Generate(context.Background(), "", PeriodDaily)
	require.NoError(t, err)

	last, err = svc.LastPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PeriodDaily, last.Period)
}

func TestLastPlanEmptyStore(t *testing.T) {
	svc := NewService(&Client{}, kvstore.NewMemory())

	_, err := svc.LastPlan(context.Background())
	assert.ErrorIs(t, err, ErrNoLastPlan)
}

func TestLastPlanCorruptEntry(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Put(context.Background(), lastPlanKey, []byte("not json")))

	svc := NewService(&Client{}, store)

	_, err := svc.LastPlan(context.Background())
	assert.Error(t, err)
}
