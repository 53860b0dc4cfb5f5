// Package web provides the HTTP server of gamevault: routing, session
// middleware and background maintenance jobs.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"gamevault/config"
	"gamevault/database"
	"gamevault/logger"
	"gamevault/util/common"
	"gamevault/util/random"
	"gamevault/web/controller"
	"gamevault/web/middleware"
	"gamevault/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const sessionCookieName = "gamevault"

// Server is the gamevault web server with its controllers, services and
// scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db *gorm.DB

	auth   *controller.AuthController
	vault  *controller.VaultController
	lookup *controller.LookupController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server around the given database handle.
func NewServer(db *gorm.DB) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{db: db, ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	webDomain := config.GetWebDomain()
	if webDomain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(webDomain))
	}

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	// Session cookies are signed with the configured secret. Without one a
	// random secret is generated, which invalidates all sessions on restart.
	secret := config.GetSessionSecret()
	if secret == "" {
		secret = random.Seq(32)
		logger.Debug("no session secret configured, generated a random one")
	}
	store := cookie.NewStore([]byte(secret))
	engine.Use(sessions.Sessions(sessionCookieName, store))

	basePath := config.GetBasePath()
	engine.Use(func(c *gin.Context) {
		c.Set("base_path", basePath)
	})

	g := engine.Group(basePath)
	s.auth = controller.NewAuthController(g, service.NewAccountService(s.db))
	s.vault = controller.NewVaultController(g, service.NewVaultService(s.db))
	s.lookup = controller.NewLookupController(g, service.NewAvailabilityService(), service.NewStatsLinkService())

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules background maintenance jobs.
func (s *Server) startTask() {
	// Flush the sqlite WAL periodically so the main db file stays current.
	s.cron.AddFunc("@hourly", func() {
		if err := database.Checkpoint(s.db); err != nil {
			logger.Warning("wal checkpoint failed:", err)
		}
	})
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.startTask()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: engine,
	}

	go func() {
		defer common.Recover("web server")
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Error("web server stopped:", err)
		}
	}()

	logger.Infof("web server running on %s", listener.Addr().String())
	return nil
}

// Stop gracefully shuts down the web server and its jobs.
func (s *Server) Stop() error {
	s.cancel()

	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	return err
}
