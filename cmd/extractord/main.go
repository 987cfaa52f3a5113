// Command extractord is a small notes service built on the extraction pipeline.
// Every route receives its inputs through extractors: query strings, JSON and
// raw bodies, path parameters, request extensions and a custom caller type.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/extractor/core/config"
	"github.com/dmitrymomot/extractor/core/extract"
	"github.com/dmitrymomot/extractor/core/health"
	"github.com/dmitrymomot/extractor/core/logger"
	"github.com/dmitrymomot/extractor/core/response"
	"github.com/dmitrymomot/extractor/core/router"
	"github.com/dmitrymomot/extractor/core/server"
	"github.com/dmitrymomot/extractor/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	r := newRouter(cfg, log, newNoteStore())

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}

func newLogger(cfg Config) *slog.Logger {
	if cfg.development() {
		return logger.New(logger.WithDevelopment(cfg.AppName), logger.WithLevel(cfg.LogLevel))
	}
	return logger.New(logger.WithProduction(cfg.AppName), logger.WithLevel(cfg.LogLevel))
}

func newRouter(cfg Config, log *slog.Logger, notes *noteStore) router.Router[*router.Context] {
	r := router.New[*router.Context](
		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
		router.WithLogger[*router.Context](log),
		router.WithMiddleware(
			middleware.LoggingWithLogger[*router.Context](log),
			middleware.RequestID[*router.Context](),
			middleware.BodyLimitWithSize[*router.Context](cfg.BodyLimit),
			middleware.Extension[*router.Context](notes),
		),
	)

	r.Get("/health/live", health.Liveness[*router.Context])
	r.Get("/health/ready", health.Readiness[*router.Context](log, health.Check{Name: "notes", Probe: notes.ping}))

	notesStore := extract.Extension[*noteStore]()
	noteID := extract.Path1[uuid.UUID]()

	r.Route("/notes", func(r router.Router[*router.Context]) {
		r.Get("/", extract.Handle2(notesStore, extract.Optional(extract.Query[listQuery]()), listNotes))
		r.Post("/", extract.Handle4(
			notesStore,
			extract.Extension[middleware.ID](),
			extract.Optional(extract.Of[caller]()),
			extract.JSON[createNoteRequest](),
			createNote,
		))
		r.Get("/{id}", extract.Handle2(notesStore, noteID, getNote))
		r.Delete("/{id}", extract.Handle2(notesStore, noteID, deleteNote))
		r.Put("/{id}/title", extract.Handle3(notesStore, noteID, extract.String(), renameNote))
		r.Put("/{id}/attachment", extract.Handle3(notesStore, noteID, extract.BytesMaxLength(cfg.AttachmentLimit), uploadAttachment))
		r.Get("/{id}/tags/{index}", extract.Handle2(notesStore, extract.Path2[uuid.UUID, int](), getTag))
	})

	r.Get("/whoami", extract.Handle1(extract.Of[caller](), whoami))
	r.Post("/echo", extract.Handle1(extract.Body(), echo))
	r.Post("/bytes", extract.Handle1(extract.Bytes(), countBytes))
	r.Get("/debug/params/{first}/{rest...}", extract.Handle1(extract.URLParams(), debugParams))

	return r
}
