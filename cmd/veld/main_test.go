package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.veld.sh/veld/internal/adapters/logger"
	"go.veld.sh/veld/internal/app"
	"go.veld.sh/veld/internal/engine/names"
)

func testProvider(lg *logger.Logger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    app.New(lg, names.NewTable()),
			Logger: lg,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	lg := logger.New()
	lg.SetOutput(new(bytes.Buffer))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, testProvider(lg))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_CommandError verifies that command failures are logged and exit 1.
func TestRun_CommandError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	logBuf := new(bytes.Buffer)
	lg := logger.New()
	lg.SetOutput(logBuf)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"hash", "--no-such-flag"}, stderr, testProvider(lg))
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, logBuf.String(), "unknown flag")
}
