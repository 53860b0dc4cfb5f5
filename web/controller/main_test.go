package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gamevault/database"
	"gamevault/logger"
	"gamevault/web/entity"
	"gamevault/web/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

const testSessionCookie = "gamevault"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})

	engine := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	engine.Use(sessions.Sessions(testSessionCookie, store))
	engine.Use(func(c *gin.Context) {
		c.Set("base_path", "/")
	})

	g := engine.Group("/")
	NewAuthController(g, service.NewAccountService(db))
	NewVaultController(g, service.NewVaultService(db))

	return engine, db
}

func postForm(engine *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func get(engine *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func parseMsg(t *testing.T, w *httptest.ResponseRecorder) entity.Msg {
	t.Helper()
	var msg entity.Msg
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	return msg
}

// sessionCookies extracts the session cookie from a response. The handlers may
// save the session more than once per request; the last write wins.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testSessionCookie {
			session = c
		}
	}
	if session == nil {
		return nil
	}
	return []*http.Cookie{session}
}
