// Package server exposes the wizard over HTTP for the local web UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	clog "github.com/xrsl/applykit/pkg/log"
	"github.com/xrsl/applykit/pkg/wizard"
)

// JobTexter fetches a job posting URL and returns its plain text.
type JobTexter interface {
	JobText(ctx context.Context, url string) (string, error)
}

// Server holds the wizard controller and its collaborators.
type Server struct {
	ctrl    *wizard.Controller
	fetcher JobTexter
}

// New builds a Server around a wizard controller. fetcher may be nil,
// in which case job_url requests are rejected.
func New(ctrl *wizard.Controller, fetcher JobTexter) *Server {
	return &Server{ctrl: ctrl, fetcher: fetcher}
}

// Engine builds the gin engine with routes registered.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(requestLog(), gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.POST("/summarize", s.handleSummarize)
	api.POST("/draft", s.handleDraft)
	api.POST("/publish", s.handlePublish)

	api.POST("/wizard", s.handleWizardNew)
	api.GET("/wizard/:id", s.handleWizardGet)
	api.DELETE("/wizard/:id", s.handleWizardDelete)
	api.POST("/wizard/:id/resume", s.handleWizardResume)
	api.POST("/wizard/:id/samples", s.handleWizardAddSample)
	api.DELETE("/wizard/:id/samples/:sid", s.handleWizardRemoveSample)
	api.POST("/wizard/:id/step/summarize", s.handleWizardSummarize)
	api.POST("/wizard/:id/step/draft", s.handleWizardDraft)
	api.POST("/wizard/:id/step/publish", s.handleWizardPublish)

	return engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	clog.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Addr returns a normalized listen address for the given port or address.
func Addr(addr string) string {
	if addr == "" {
		return ":8080"
	}
	if addr[0] == ':' {
		return addr
	}
	for _, c := range addr {
		if c < '0' || c > '9' {
			return addr
		}
	}
	return ":" + addr
}

// requestLog emits a structured log line per request.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		clog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
			"client_ip", c.ClientIP(),
		)
	}
}
