package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/transit/internal/ui/output"
	"go.trai.ch/transit/internal/ui/style"
)

// PrettyHandler is a slog.Handler for the terminal: one colored line per
// record, a level icon for warnings and errors, key=value attrs appended.
type PrettyHandler struct {
	term  *termenv.Output
	level slog.Leveler
	bound []slog.Attr
	group string
}

// NewPrettyHandler creates a handler writing to w, or os.Stderr when w is
// nil. Only the Level option is honored.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	// The zero LevelVar is Info, matching slog's default.
	lv := &slog.LevelVar{}
	if opts != nil && opts.Level != nil {
		lv.Set(opts.Level.Level())
	}

	return &PrettyHandler{
		term:  output.New(w),
		level: lv,
	}
}

// Enabled reports whether records at level are emitted.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single colored line: icon, message, then
// handler-bound attrs followed by record attrs.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var line strings.Builder
	if icon != "" {
		line.WriteString(icon)
		line.WriteString(" ")
	}
	line.WriteString(r.Message)

	for _, attr := range h.bound {
		line.WriteString(" ")
		line.WriteString(formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" ")
		line.WriteString(formatAttr(h.group, attr))
		return true
	})

	styled := h.term.String(line.String()).Foreground(color)
	_, err := h.term.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.bound = append(h.bound[:len(h.bound):len(h.bound)], attrs...)
	return &clone
}

// WithGroup returns a handler that qualifies attr keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func levelStyle(level slog.Level) (icon string, color termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

func formatAttr(group string, attr slog.Attr) string {
	if group != "" {
		return group + "." + attr.Key + "=" + attr.Value.String()
	}
	return attr.Key + "=" + attr.Value.String()
}
