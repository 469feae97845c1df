// Package server serves the model catalog and evaluation API over HTTP,
// along with the embedded browser frontend. It is the only process
// surface of the explorer; the numeric packages underneath it hold no
// state, so every request is handled independently.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hydromet/explorer/internal/log"
	"github.com/hydromet/explorer/pkg/config"
)

// DefaultMaxGridPoints caps the points parameter of an evaluation
// request when the config does not set its own limit. The cap keeps
// every evaluation bounded; a plot never needs more resolution anyway.
const DefaultMaxGridPoints = 2000

// Controller represents the HTTP server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.ConfigProvider
	serverConfig   config.ServerData
	siteConfig     config.SiteData
	Server         http.Server
	FS             fs.FS
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new HTTP server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, logger *zap.SugaredLogger) (*Controller, error) {
	cfgData, err := configProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		serverConfig:   cfgData.Server,
		siteConfig:     cfgData.Site,
		logger:         logger,
	}

	if ctrl.serverConfig.ListenAddr == "" {
		logger.Info("server.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.serverConfig.ListenAddr = "0.0.0.0"
	}
	if ctrl.serverConfig.HTTPPort == 0 {
		logger.Info("server.http_port not provided; defaulting to 8080")
		ctrl.serverConfig.HTTPPort = 8080
	}
	if ctrl.serverConfig.MaxGridPoints == 0 {
		ctrl.serverConfig.MaxGridPoints = DefaultMaxGridPoints
	}
	if ctrl.siteConfig.PageTitle == "" {
		ctrl.siteConfig.PageTitle = "Hydromet Concepts Explorer"
	}

	ctrl.handlers = NewHandlers(ctrl)
	ctrl.FS = GetAssets()

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.serverConfig.ListenAddr, ctrl.serverConfig.HTTPPort)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the HTTP server
func (c *Controller) StartController() error {
	log.Info("Starting HTTP server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.serverConfig.TLSCertPath != "" && c.serverConfig.TLSKeyPath != "" {
			if err := c.Server.ListenAndServeTLS(c.serverConfig.TLSCertPath, c.serverConfig.TLSKeyPath); err != http.ErrServerClosed {
				log.Errorf("HTTP server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("HTTP server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the HTTP server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() http.Handler {
	router := mux.NewRouter()

	router.Use(c.requestIDMiddleware)

	// API endpoints
	router.HandleFunc("/api/models", c.handlers.GetModels).Methods(http.MethodGet)
	router.HandleFunc("/api/models/{model}", c.handlers.GetModel).Methods(http.MethodGet)
	router.HandleFunc("/api/models/{model}/evaluate", c.handlers.EvaluateModel).Methods(http.MethodGet)
	router.HandleFunc("/api/evaluate", c.handlers.EvaluateRequest).Methods(http.MethodPost)
	router.HandleFunc("/api/site", c.handlers.GetSite).Methods(http.MethodGet)
	router.HandleFunc("/api/version", c.handlers.GetVersion).Methods(http.MethodGet)

	// Frontend
	router.HandleFunc("/", c.handlers.ServeIndexTemplate).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(http.FileServer(http.FS(c.FS)))

	// Recovery turns a handler panic into a 500 instead of killing the
	// process; compression negotiates gzip with the browser.
	return handlers.RecoveryHandler(handlers.RecoveryLogger(&recoveryLogger{c.logger}))(
		handlers.CompressHandler(router))
}

// recoveryLogger adapts the zap logger to gorilla's RecoveryHandlerLogger
type recoveryLogger struct {
	logger *zap.SugaredLogger
}

func (r *recoveryLogger) Println(args ...interface{}) {
	r.logger.Error(args...)
}
