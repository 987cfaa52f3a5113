// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/extractor/core/config"
//
//	type ExtractConfig struct {
//		BodyLimit int64 `env:"BODY_LIMIT" envDefault:"1048576"`
//		Strict    bool  `env:"STRICT_JSON" envDefault:"false"`
//		APIKey    string `env:"API_KEY,required"`
//	}
//
//	func main() {
//		var cfg ExtractConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 ExtractConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ExtractConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	type LogConfig struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&LogConfig{})
//
// Reset drops the cache, so tests can load again after changing the environment.
package config
