package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-ragkit/pkg/wizard"
)

// Theme captures optional message prefixes the runner applies when printing.
type Theme struct {
	InfoPrefix  string
	AlertPrefix string
	ErrorPrefix string
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithSession resumes an existing session instead of starting a new one.
func WithSession(session *wizard.Session) Option {
	return func(r *Runner) {
		if session != nil {
			r.session = session
		}
	}
}

// WithBadges toggles coloured level badges next to options.
func WithBadges(enabled bool) Option {
	return func(r *Runner) {
		r.badges = enabled
	}
}

// WithOutput sets where the default survey driver prints info messages.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.out = out
	}
}

// WithLogger sets the logger used for step transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
