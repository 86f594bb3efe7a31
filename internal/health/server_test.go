package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/scoreline/internal/engine"
	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/projection"
	"github.com/yourusername/scoreline/internal/solver"
)

type stubProjector struct {
	projection *models.Projection
	err        error
}

func (s stubProjector) ProjectSnapshot(ctx context.Context, _ *models.MarketSnapshot) (*models.Projection, error) {
	return s.projection, s.err
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthAndLive(t *testing.T) {
	srv := NewServer(Config{ServiceName: "scoreline", Version: "1.2.3", Commit: "abc"})

	rec := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)

	rec = get(t, srv, "/live")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyRequiresSetReady(t *testing.T) {
	srv := NewServer(Config{ServiceName: "scoreline"})

	rec := get(t, srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	srv.SetReady(true)
	rec = get(t, srv, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Checks["service"])
}

func TestReadyRunsChecks(t *testing.T) {
	srv := NewServer(Config{
		ServiceName: "scoreline",
		Checks: map[string]Checker{
			"good": CheckFunc(func(context.Context) error { return nil }),
			"bad":  CheckFunc(func(context.Context) error { return errors.New("boom") }),
		},
	})
	srv.SetReady(true)

	rec := get(t, srv, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "ok", resp.Checks["good"])
	assert.Equal(t, "error: boom", resp.Checks["bad"])
}

func TestProjectionCheckWithEngine(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	e, err := engine.New(solver.DefaultConfig(), projection.DefaultConfig(), log)
	require.NoError(t, err)

	assert.NoError(t, ProjectionCheck(e).Check(context.Background()))
}

func TestProjectionCheckFailures(t *testing.T) {
	ctx := context.Background()

	err := ProjectionCheck(stubProjector{err: errors.New("down")}).Check(ctx)
	assert.EqualError(t, err, "down")

	err = ProjectionCheck(stubProjector{projection: &models.Projection{Path: models.PathInsufficient}}).Check(ctx)
	assert.Error(t, err)

	err = ProjectionCheck(stubProjector{projection: &models.Projection{
		Path:    models.PathMoneylineTotals,
		Markets: []models.DerivedMarket{{MarketType: models.MarketTypeMoneyline, Outcome: "Home", FairOdds: 2}},
	}}).Check(ctx)
	assert.ErrorContains(t, err, models.MarketTypeTotals)
}

func TestShutdownWithoutStart(t *testing.T) {
	srv := NewServer(Config{})
	assert.NoError(t, srv.Shutdown())
}
