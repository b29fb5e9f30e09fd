package view

import (
	"log/slog"

	"github.com/dmitrymomot/authkit/core/identity"
)

var _ Binder = (*LogBinder)(nil)

// LogBinder is a headless Binder that logs what a UI would render.
// Useful for daemons and for tracing UI decisions during development.
type LogBinder struct {
	logger *slog.Logger
}

// NewLogBinder creates a binder that writes render operations to logger.
// A nil logger falls back to slog.Default().
func NewLogBinder(logger *slog.Logger) *LogBinder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogBinder{logger: logger}
}

func (b *LogBinder) PresentLogin() {
	b.logger.Info("view: present login surface")
}

func (b *LogBinder) HideLogin() {
	b.logger.Info("view: hide login surface")
}

func (b *LogBinder) ResetLoginForm() {
	b.logger.Debug("view: reset login form")
}

func (b *LogBinder) ShowInlineError(msg string) {
	b.logger.Info("view: show inline error", slog.String("message", msg))
}

func (b *LogBinder) ClearInlineError() {
	b.logger.Debug("view: clear inline error")
}

func (b *LogBinder) RenderAuthenticatedUser(user identity.User) {
	b.logger.Info("view: render authenticated user",
		slog.String("username", user.Username),
		slog.String("label", user.Label()),
		slog.String("role_label", RoleLabel(user.Role)),
		slog.String("role_style", string(RoleStyle(user.Role))))
}

func (b *LogBinder) RenderAnonymous() {
	b.logger.Info("view: render anonymous")
}
