// Package logx sets up the slog default logger used by the command line tools: plain messages on standard error,
// prefixed with a colored level name when the terminal supports it.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level the user has selected. Messages at levels at or above this level are shown.
// The default is [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] corresponding to the given user flag options. The flags correspond to the
// following values:
//   - debug: [slog.LevelDebug]
//   - verbose: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelInfo])
//
// The flags are evaluated in that order, so if both debug and quiet are given, it still returns [slog.LevelDebug].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefaultLogger makes a [Handler] writing to w at [UserLevel] the default slog logger.
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, UserLevel)))
}

// Handler is a [slog.Handler] writing one line per record: the message, then any attributes as key=value pairs.
// Records below [slog.LevelInfo] or above it are prefixed with their level name, colored for the output's profile.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
}

// NewHandler returns a new Handler writing records at or above level to w. Colors are only used if w is a terminal
// that supports them.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		out:   termenv.NewOutput(w),
		level: level,
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {

	sb := &strings.Builder{}

	if r.Level != slog.LevelInfo {
		sb.WriteString(h.levelPrefix(r.Level))
		sb.WriteString(" ")
	}

	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(sb, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, h.group, a)
		return true
	})

	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err

}

// WithAttrs returns a copy of the Handler that adds attrs to every record. The attributes are qualified by the
// group the Handler is in now, not by groups opened later.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}

func (h *Handler) levelPrefix(level slog.Level) string {

	name := strings.ToLower(level.String()) + ":"

	var color termenv.Color

	switch {
	case level >= slog.LevelError:
		color = h.out.Color("1")
	case level >= slog.LevelWarn:
		color = h.out.Color("3")
	default:
		color = h.out.Color("8")
	}

	return h.out.String(name).Foreground(color).Bold().String()

}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {

	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + key
	}

	fmt.Fprintf(sb, " %s=%v", key, a.Value.Resolve())

}
