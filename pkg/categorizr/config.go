package categorizr

import (
	"strconv"
	"strings"
)

// Flag is an on/off setting read from the environment. Values that
// strconv.ParseBool rejects read as false instead of failing the load.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (f *Flag) UnmarshalText(text []byte) error {
	v, err := strconv.ParseBool(strings.TrimSpace(string(text)))
	*f = Flag(err == nil && v)
	return nil
}

// Config holds engine settings loaded from the environment.
type Config struct {
	TabletsAsDesktops Flag `env:"CATEGORIZR_TABLETS_AS_DESKTOPS" envDefault:"false"` // TabletsAsDesktops reports tablets as desktop.
	TVsAsDesktops     Flag `env:"CATEGORIZR_TVS_AS_DESKTOPS" envDefault:"false"`     // TVsAsDesktops reports TVs as desktop.
	RobotsAsMobile    Flag `env:"CATEGORIZR_ROBOTS_AS_MOBILE" envDefault:"false"`    // RobotsAsMobile reports search engine robots as mobile.
}

// Options converts cfg into engine options.
func (cfg Config) Options() Options {
	return Options{
		TabletsAsDesktops: bool(cfg.TabletsAsDesktops),
		TVsAsDesktops:     bool(cfg.TVsAsDesktops),
		RobotsAsMobile:    bool(cfg.RobotsAsMobile),
	}
}

// NewFromConfig creates an Engine from cfg. Additional options are applied
// after the config values.
func NewFromConfig(cfg Config, opts ...Option) *Engine {
	o := cfg.Options()
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}
