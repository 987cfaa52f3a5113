package main

import (
	"log/slog"

	"github.com/dmitrymomot/extractor/core/server"
)

// Config is the service configuration, loaded from the environment and .env.
type Config struct {
	AppName  string     `env:"APP_NAME" envDefault:"extractord"`
	Env      string     `env:"APP_ENV" envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// BodyLimit caps every request body; AttachmentLimit is the declared
	// Content-Length accepted by the attachment upload.
	BodyLimit       int64 `env:"BODY_LIMIT" envDefault:"4194304"`
	AttachmentLimit int64 `env:"ATTACHMENT_LIMIT" envDefault:"1048576"`

	Server server.Config
}

func (c Config) development() bool {
	return c.Env == "development"
}
