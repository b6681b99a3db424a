package categorizr

// Options controls how cascade results are reported. The zero value reports
// every category as detected and counts robots as desktops.
type Options struct {
	// TabletsAsDesktops reports tablets as desktop.
	TabletsAsDesktops bool
	// TVsAsDesktops reports TVs as desktop.
	TVsAsDesktops bool
	// RobotsAsMobile reports search engine robots as mobile instead of desktop.
	RobotsAsMobile bool
}

// Engine classifies user agents. It is immutable after construction and safe
// for concurrent use.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options applied to the zero Options.
func New(opts ...Option) *Engine {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// NewWithOptions creates an Engine bound to o.
func NewWithOptions(o Options) *Engine {
	return &Engine{opts: o}
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// Detect categorises a user agent as mobile, tablet, desktop or tv.
// It never fails: empty and unrecognised agents are mobile.
func (e *Engine) Detect(userAgent string) Device {
	category := cascade(newUserAgent(userAgent), e.opts.RobotsAsMobile)

	// Overrides are applied once, tablets first; neither re-triggers the other.
	if e.opts.TabletsAsDesktops && category == CategoryTablet {
		category = CategoryDesktop
	}
	if e.opts.TVsAsDesktops && category == CategoryTV {
		category = CategoryDesktop
	}

	return Device{category: category}
}

var defaultEngine = New()

// Detect categorises userAgent with default options.
func Detect(userAgent string) Device {
	return defaultEngine.Detect(userAgent)
}
