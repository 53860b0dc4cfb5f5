package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gamevault/web/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLookupRouter(t *testing.T, registryStatus int) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(registryStatus)
	}))
	t.Cleanup(srv.Close)

	engine := gin.New()
	g := engine.Group("/")
	NewLookupController(g, service.NewAvailabilityServiceWithBaseURL(srv.URL), service.NewStatsLinkService())
	return engine
}

func TestAvailabilityLookup(t *testing.T) {
	tests := []struct {
		name           string
		registryStatus int
		expected       string
	}{
		{"registry hit means taken", http.StatusOK, "taken"},
		{"registry miss means available", http.StatusNoContent, "available"},
		{"registry error means unknown", http.StatusInternalServerError, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newLookupRouter(t, tt.registryStatus)

			w := postForm(engine, "/lookup/availability", url.Values{"name": {"Notch"}}, nil)
			require.Equal(t, http.StatusOK, w.Code)
			msg := parseMsg(t, w)
			require.True(t, msg.Success)
			assert.Equal(t, map[string]any{"name": "Notch", "status": tt.expected}, msg.Obj)
		})
	}
}

func TestAvailabilityLookupEmptyName(t *testing.T) {
	engine := newLookupRouter(t, http.StatusOK)

	w := postForm(engine, "/lookup/availability", url.Values{}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, parseMsg(t, w).Success)
}

func TestStatsLink(t *testing.T) {
	engine := newLookupRouter(t, http.StatusOK)

	w := postForm(engine, "/lookup/stats", url.Values{
		"name":   {"Hide on bush#KR1"},
		"region": {"kr"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msg := parseMsg(t, w)
	require.True(t, msg.Success)
	assert.Equal(t, map[string]any{"url": "https://www.op.gg/summoners/kr/Hideonbush-KR1"}, msg.Obj)
}

func TestStatsLinkMissingRegion(t *testing.T) {
	engine := newLookupRouter(t, http.StatusOK)

	w := postForm(engine, "/lookup/stats", url.Values{"name": {"Faker"}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, parseMsg(t, w).Success)
}
