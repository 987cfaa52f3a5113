package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsing wraps failures to parse environment variables into a config struct.
var ErrParsing = errors.New("failed to parse config")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (T value)
	loadMu     sync.Mutex
)

// loadDotenv reads .env from the working directory once. A missing file is not an error.
func loadDotenv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Load fills dst from the environment. The first successful load of a type is
// cached and copied into later calls for the same type.
func Load[T any](dst *T) error {
	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*dst = v.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if v, ok := cache.Load(key); ok {
		*dst = v.(T)
		return nil
	}

	loadDotenv()

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("%w %s: %w", ErrParsing, key, err)
	}
	cache.Store(key, cfg)
	*dst = cfg
	return nil
}

// MustLoad is like Load but panics on failure. Use it during startup.
func MustLoad[T any](dst *T) {
	if err := Load(dst); err != nil {
		panic(err)
	}
}

// Reset clears the cache so the next Load re-reads the environment.
func Reset() {
	loadMu.Lock()
	defer loadMu.Unlock()
	cache.Clear()
}
