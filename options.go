package mathparser

// Option is an option for evaluation.
type Option interface {
	option(config) config
}

// config holds the settings for one evaluation.
type config struct {
	// trace is whether to record computation steps.
	trace bool
}

type traceopt bool

// Trace sets whether evaluation records a line for each operator and function
// application, e.g. "50 * -45 = -2250" or "log 100 10 = 2". Unused operands
// are written as NaN. Without tracing, no trace lines are formatted.
func Trace(on bool) Option {
	return traceopt(on)
}

func (o traceopt) option(c config) config {
	c.trace = bool(o)
	return c
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
