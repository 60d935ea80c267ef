package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/Makepad-fr/docpanels/internal/catalog"
	"github.com/Makepad-fr/docpanels/internal/panels"
)

// Title is the document title of the full page.
const Title = "Procurement Tracker documentation"

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error  string   `json:"error" yaml:"error"`
	Anchor string   `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Known  []string `json:"known,omitempty" yaml:"known,omitempty"`
}

// NewRouter builds the gin engine serving the documentation page.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/", func(c *gin.Context) {
		fs, _ := panels.Page()
		writeNode(c, http.StatusOK, Page(Title, fs))
	})
	r.GET("/sections/:anchor", func(c *gin.Context) {
		anchor := c.Param("anchor")
		s, ok := panels.Lookup(anchor)
		if !ok {
			zap.L().Debug("unknown section requested", zap.String("anchor", anchor))
			c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{
				Error:  "unknown section",
				Anchor: anchor,
				Known:  panels.Anchors(),
			})
			return
		}
		writeNode(c, http.StatusOK, Section(s.Render()))
	})
	r.GET("/api/catalog", func(c *gin.Context) {
		c.Negotiate(http.StatusOK, gin.Negotiate{
			Offered: []string{gin.MIMEJSON, gin.MIMEYAML},
			Data:    catalog.Current(),
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// Serve runs handler on addr until ctx is cancelled, then shuts down.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("starting docs server", zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
		zap.L().Info("shutting down docs server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func writeNode(c *gin.Context, status int, n g.Node) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := n.Render(c.Writer); err != nil {
		zap.L().Error("render failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zap.L().Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
