package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` struct tags.
// The default .env file is read once per process if present. Each config type
// is parsed once; later calls for the same type receive the cached copy.
//
// Example:
//
//	var cfg categorizr.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnvFiles reads the given .env files into the process environment.
// Variables already set are not overridden. It must be called before the
// first Load of a type to affect it.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = make(map[reflect.Type]any)
}
