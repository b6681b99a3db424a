package categorizr

// Option configures an Engine.
type Option func(*Options)

// WithTabletsAsDesktops reports tablets as desktop.
func WithTabletsAsDesktops(v bool) Option {
	return func(o *Options) { o.TabletsAsDesktops = v }
}

// WithTVsAsDesktops reports TVs as desktop.
func WithTVsAsDesktops(v bool) Option {
	return func(o *Options) { o.TVsAsDesktops = v }
}

// WithRobotsAsMobile reports search engine robots as mobile.
func WithRobotsAsMobile(v bool) Option {
	return func(o *Options) { o.RobotsAsMobile = v }
}
