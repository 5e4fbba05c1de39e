package groupdesign

import "log/slog"

// Options configures a GroupDesign run.
//
// Logger receives the informational collinearity report and every
// recoverable warning. A nil Logger disables logging; warnings are still
// collected into Result.Warnings either way, so the computation stays a
// pure function of its inputs.
type Options struct {
	Logger *slog.Logger
}

// DefaultOptions returns Options with logging disabled.
func DefaultOptions() Options {
	return Options{}
}
