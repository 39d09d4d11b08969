package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eventara/backend/config"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type echoRequest struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

func newTestRouter(t *testing.T) *Router {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := config.Configs{
		Auth: config.AuthConfigs{TokenSecret: "secret"},
		Session: config.SessionConfigs{
			Secret: "session-secret",
		},
	}

	return New(db, cfg, logger.NewLogger(logger.SILENCE))
}

func Test_router_GET_bindQuery(t *testing.T) {
	r := newTestRouter(t)
	GET(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Limit: req.Limit}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/echo?name=foo&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code uint64       `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, uint64(0), resp.Code)
	require.Equal(t, "foo", resp.Data.Name)
	require.Equal(t, 5, resp.Data.Limit)
}

func Test_router_POST_bindBody(t *testing.T) {
	r := newTestRouter(t)
	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/echo", strings.NewReader(`{"name":"bar"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"bar"`)

	// A GET against a POST route is rejected.
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_router_errorEnvelope(t *testing.T) {
	r := newTestRouter(t)
	GET(r, "/notfound", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found thing")
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notfound", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Code  uint64 `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, uint64(errorx.NotFound), resp.Code)
	require.Equal(t, "Not found thing", resp.Error)
}

func Test_router_middlewareOrder(t *testing.T) {
	r := newTestRouter(t)
	calls := []string{}

	r.Before(func(ctx context.Context) (context.Context, error) {
		calls = append(calls, "before")
		return nil, nil
	})
	r.AddCloser(func(ctx context.Context) {
		calls = append(calls, "closer")
	})

	// Branching isolates the middleware chain of a subrouter.
	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		calls = append(calls, "branch-before")
		return nil, nil
	})

	GET(r, "/base", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		calls = append(calls, "handler")
		return &echoResponse{}, nil
	})
	GET(branch, "/branched", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		calls = append(calls, "handler")
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/base", nil))
	require.Equal(t, []string{"before", "handler", "closer"}, calls)

	calls = nil
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/branched", nil))
	require.Equal(t, []string{"before", "branch-before", "handler", "closer"}, calls)
}
