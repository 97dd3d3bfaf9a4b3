package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/receptbanken/receptbanken/config"
	"github.com/receptbanken/receptbanken/internal/content"
	"github.com/receptbanken/receptbanken/internal/search"
	"github.com/receptbanken/receptbanken/internal/taxonomy"
)

// Run wires the content store, catalog snapshot, search index and taxonomy
// registry into an echo server and blocks serving it.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Unified HTTP error handler with structured JSON and logging.
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		if code >= http.StatusInternalServerError {
			baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		}
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	contentLogger := log.New(log.Writer(), "[CONTENT] ", log.LstdFlags)
	store := content.NewStore(cfg.Content.Dir, contentLogger)
	registry := taxonomy.Default()

	var index *search.Index
	if cfg.Search.Enabled {
		index = search.New()
	}
	library := NewLibrary(store, cfg.Content.Types, cfg.Content.DefaultType, index, contentLogger)
	if err := library.Reload(); err != nil {
		return err
	}

	if cfg.Content.Watch {
		watcher, err := watchContent(cfg.Content.Dir, contentLogger, func() {
			if err := library.Reload(); err != nil {
				contentLogger.Printf("reload failed: %v", err)
			}
		})
		if err != nil {
			contentLogger.Printf("content watching disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	markdown := goldmark.New(goldmark.WithExtensions(extension.GFM))

	api := e.Group("/api")
	ch := &ContentHandler{
		Store:       store,
		Library:     library,
		Registry:    registry,
		Scorer:      content.TagOverlap{},
		Index:       index,
		Markdown:    markdown,
		ContentType: cfg.Content.DefaultType,
		MaxResults:  cfg.Search.MaxResults,
		Logger:      contentLogger,
	}
	ch.Register(api)

	th := &TaxonomyHandler{Registry: registry}
	th.Register(api)

	baseLogger.Printf("listening on %s", cfg.Server.Address)
	return e.Start(cfg.Server.Address)
}
