package interp

// DefaultTapeSize is the tape length used when none is specified.
const DefaultTapeSize = 30000

// Option configures a VM under New.
type Option interface{ apply(cfg *config) }

type config struct {
	tapeSize uint
	elastic  bool
	logfn    func(mess string, args ...interface{})
}

var defaultOptions = Options(
	WithTapeSize(DefaultTapeSize),
)

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

// WithTapeSize sets the initial tape length; 0 means DefaultTapeSize.
func WithTapeSize(n uint) Option { return tapeSizeOption(n) }

// WithElastic determines whether moving right past the end of the tape grows
// it by one cell, rather than failing.
func WithElastic(elastic bool) Option { return elasticOption(elastic) }

// WithLogf sets a function to trace every instruction executed.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type options []Option
type tapeSizeOption uint
type elasticOption bool
type withLogfn func(mess string, args ...interface{})

func (opts options) apply(cfg *config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

func (n tapeSizeOption) apply(cfg *config) {
	if n == 0 {
		n = DefaultTapeSize
	}
	cfg.tapeSize = uint(n)
}

func (elastic elasticOption) apply(cfg *config) { cfg.elastic = bool(elastic) }
func (logfn withLogfn) apply(cfg *config)       { cfg.logfn = logfn }
