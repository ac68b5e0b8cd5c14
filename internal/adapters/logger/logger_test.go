package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing plain text into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("some message")

	goldie.New(t).Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	goldie.New(t).Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("database connection failed"), "failed to load user data"),
				"failed to process request",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "metadata",
			err: func() error {
				err := zerr.Wrap(errors.New("connection refused"), "service unavailable")
				err = zerr.With(err, "service", "auth-api")
				return zerr.With(err, "retry_count", 3)
			}(),
			goldenName: "error_metadata",
		},
		{
			name: "joined sentinel",
			err: zerr.With(
				errors.Join(zerr.New("fetch failed"), errors.New("request timed out")),
				"month", "2024-05",
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String(), "debug is off by default")

	require.NoError(t, lg.SetLevel("debug"))
	lg.Debug("detail")
	assert.Equal(t, "detail\n", buf.String())

	buf.Reset()
	require.NoError(t, lg.SetLevel("error"))
	lg.Warn("quiet")
	assert.Empty(t, buf.String())

	require.NoError(t, lg.SetLevel(""))
	lg.Info("back")
	assert.Equal(t, "back\n", buf.String())

	err := lg.SetLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(errors.New("timeout"), "fetch failed"), "month", "2024-05")
	lg.Error(err)

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, "fetch failed: timeout")
	assert.NotContains(t, output, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	assert.Equal(t, "✗ Error: pretty again\n", buf.String())
}

func TestLogger_LevelSurvivesModeSwitch(t *testing.T) {
	lg, buf := newTestLogger(t)
	require.NoError(t, lg.SetLevel("debug"))

	lg.SetJSON(true)
	lg.Debug("still visible")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			lg.Info("concurrent info")
		}()
		go func() {
			defer wg.Done()
			lg.Error(errors.New("concurrent error"))
		}()
		go func() {
			defer wg.Done()
			lg.SetJSON(true)
			lg.SetJSON(false)
		}()
	}
	wg.Wait()
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, nil)).With("tier", "current")
	log.Info("month cached")

	goldie.New(t).Assert(t, "info_attrs", buf.Bytes())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("cache")
	log.Warn("slow", "ms", 250)

	assert.Equal(t, "! slow cache.ms=250\n", buf.String())
}

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "Ascii", profileName(logger.ColorProfile()))
}
