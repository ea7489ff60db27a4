package recarray

// Option configures record construction.
type Option func(*options)

type options struct {
	format   string
	count    int
	hasCount bool
}

func defaultOptions() *options {
	return &options{count: -1}
}

// WithFormat sets the format string. FromSequence infers one from the
// data when this option is absent; FromBytes defaults to "c".
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithCount sets the record count for FromBytes. Without it the count
// is derived from the buffer size, which must then be an exact
// multiple of the record size.
func WithCount(n int) Option {
	return func(o *options) {
		o.count = n
		o.hasCount = true
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
