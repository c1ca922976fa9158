package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {

	tests := []struct {
		debug, verbose, quiet bool
		expected              slog.Level
	}{
		{false, false, false, slog.LevelInfo},
		{true, false, false, slog.LevelDebug},
		{false, true, false, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{true, false, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, LevelFromFlags(test.debug, test.verbose, test.quiet), "%+v", test)
	}

}

func TestHandler(t *testing.T) {

	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	logger := slog.New(NewHandler(buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("Rendering map.png ...")
	logger.Warn("Operation interrupted.")
	logger.Error("missing.dae: can't read mesh file")
	logger.With("path", "a.dae").WithGroup("mesh").Info("loaded", "triangles", 12)

	assert.Equal(t,
		"Rendering map.png ...\n"+
			"warn: Operation interrupted.\n"+
			"error: missing.dae: can't read mesh file\n"+
			"loaded path=a.dae mesh.triangles=12\n",
		buf.String(),
	)

}

func TestSetDefaultLogger(t *testing.T) {

	t.Setenv("NO_COLOR", "1")

	defer func(level slog.Level, logger *slog.Logger) {
		UserLevel = level
		slog.SetDefault(logger)
	}(UserLevel, slog.Default())

	buf := &bytes.Buffer{}

	UserLevel = slog.LevelError
	SetDefaultLogger(buf)

	slog.Info("quiet")
	slog.Error("loud")

	assert.Equal(t, "error: loud\n", buf.String())

	buf.Reset()

	UserLevel = slog.LevelDebug
	SetDefaultLogger(buf)

	slog.Debug("details")

	assert.Equal(t, "debug: details\n", buf.String())

}
