package apiserver

import (
	goctx "context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/netrixframework/safez3/config"
	"github.com/netrixframework/safez3/context"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/types"
	"github.com/pkg/errors"
)

// requestIDHeader carries the identifier assigned to every request
const requestIDHeader = "X-Request-ID"

// APIServer runs a HTTP server that checks SMT-LIB2 scripts. Every request
// gets its own engine context, so requests are served concurrently.
type APIServer struct {
	router *gin.Engine
	ctx    *context.RootContext

	server  *http.Server
	addr    string
	maxBody int64

	*types.BaseService
}

// NewAPIServer instantiates APIServer
func NewAPIServer(ctx *context.RootContext) *APIServer {
	server := &APIServer{
		ctx:         ctx,
		addr:        ctx.Config.APIServerAddr,
		maxBody:     ctx.Config.APIServerMaxBody,
		BaseService: types.NewBaseService("APIServer", ctx.Logger),
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(server.requestIDMiddleware, server.logMiddleware, gin.Recovery())

	router.POST("/check", server.handleCheck)
	router.GET("/params", server.handleParams)
	router.GET("/version", server.handleVersion)
	router.GET("/stats", server.handleStats)

	server.router = router
	server.server = &http.Server{
		Addr:    server.addr,
		Handler: router,
	}

	if server.maxBody <= 0 {
		server.maxBody = config.DefaultMaxBody
	}
	return server
}

// Handler returns the HTTP handler serving the routes
func (a *APIServer) Handler() http.Handler {
	return a.router
}

func (a *APIServer) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (a *APIServer) logMiddleware(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery

	// Process request
	c.Next()

	end := time.Now()
	if raw != "" {
		path = path + "?" + raw
	}
	a.Logger.With(log.LogParams{
		"request_id":  c.GetString(requestIDHeader),
		"timestamp":   end,
		"latency":     end.Sub(start).String(),
		"client_ip":   c.ClientIP(),
		"method":      c.Request.Method,
		"status_code": c.Writer.Status(),
		"error":       c.Errors.ByType(gin.ErrorTypePrivate).String(),
		"body_size":   c.Writer.Size(),
		"path":        path,
	}).Debug("Handled request")
}

// Start starts the APIServer and implements Service
func (a *APIServer) Start() error {
	a.StartRunning()
	go func() {
		a.Logger.With(log.LogParams{
			"addr": a.addr,
		}).Info("API server starting!")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.With(log.LogParams{
				"addr": a.addr,
				"err":  err,
			}).Fatal("API server closed!")
		}
	}()
	return nil
}

// Stop stops the APIServer and implements Service
func (a *APIServer) Stop() error {
	a.StopRunning()
	ctx, cancel := goctx.WithTimeout(goctx.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("API server focefully shutdown")
		return errors.Wrap(err, "shutting down API server")
	}
	a.Logger.Info("API server stopped!")
	return nil
}
