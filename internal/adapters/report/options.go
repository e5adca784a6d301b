package report

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultTopClubs    = 3
	defaultMaxVeterans = 5
)

type options struct {
	topClubs    int
	maxVeterans int
	title       string
}

// Option applies a configuration option to the emitters.
type Option func(*options)

// WithTopClubs sets how many clubs the highlights and report list.
func WithTopClubs(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topClubs = n
		}
	}
}

// WithMaxVeterans caps the full-veteran names listed in highlights.
func WithMaxVeterans(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxVeterans = n
		}
	}
}

// WithTitle sets the report and headline title.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		topClubs:    defaultTopClubs,
		maxVeterans: defaultMaxVeterans,
		title:       "Race analytics",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
