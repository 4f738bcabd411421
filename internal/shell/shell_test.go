package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/schema-gateway/mock-upstream/internal/shell"
)

func TestShell_RunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var started, stopped bool

	hooks := fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				started = true
				return nil
			},
			OnStop: func(context.Context) error {
				stopped = true
				return nil
			},
		})
	})

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := shell.New(zaptest.NewLogger(t)).Run(ctx, hooks)

	assert.Equal(t, 0, shell.ExitCode(err))
	assert.True(t, started)
	assert.True(t, stopped)
}

func TestShell_RunStartFailure(t *testing.T) {
	hooks := fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return errors.New("bind failed")
			},
		})
	})

	err := shell.New(zaptest.NewLogger(t)).Run(context.Background(), hooks)

	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestShell_RunInvalidGraph(t *testing.T) {
	type missing struct{}

	err := shell.New(zaptest.NewLogger(t)).Run(
		context.Background(),
		fx.Invoke(func(missing) {}),
	)

	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestShell_ProvidesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var injected context.Context

	err := shell.New(zaptest.NewLogger(t)).Run(ctx, fx.Invoke(func(c context.Context, lc fx.Lifecycle) {
		injected = c
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				cancel()
				return nil
			},
		})
	}))

	assert.Equal(t, 0, shell.ExitCode(err))
	if assert.NotNil(t, injected) {
		assert.Error(t, injected.Err())
	}
}
