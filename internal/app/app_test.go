package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"centerball/internal/app/cli"
	"centerball/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner records the exit code passed to Shutdown
type mockShutdowner struct {
	calls int
	opts  []fx.ShutdownOption
	err   error
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	m.calls++
	m.opts = opts

	return m.err
}

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	event := func() *zerolog.Event { return noopLogger.Debug() }
	mockLog.EXPECT().Debug().DoAndReturn(event).AnyTimes()
	mockLog.EXPECT().Error().DoAndReturn(event).AnyTimes()

	return mockLog
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
	assert.NoError(t, application.ctx.Err())
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		err          error
		expectedCode int
	}{
		{name: "Success", code: 0, expectedCode: 0},
		{name: "Failure", code: 1, err: errors.New("no tty"), expectedCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCLI := cli.NewMockCLI(ctrl)
			app := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

			mockCLI.EXPECT().Execute(app.ctx).Return(tt.code, tt.err)

			assert.Equal(t, tt.expectedCode, app.execute())
		})
	}
}

func Test_App_Run_ShutsDownWithExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCLI := cli.NewMockCLI(ctrl)
	shutdowner := &mockShutdowner{}
	app := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	mockCLI.EXPECT().Execute(gomock.Any()).Return(1, errors.New("failed"))

	app.Run()

	assert.Equal(t, 1, shutdowner.calls)
	assert.Len(t, shutdowner.opts, 1)

	select {
	case <-app.done:
	default:
		t.Fatal("done was not closed")
	}
}

func Test_App_Run_ShutdownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCLI := cli.NewMockCLI(ctrl)
	shutdowner := &mockShutdowner{err: errors.New("already stopping")}
	app := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	mockCLI.EXPECT().Execute(gomock.Any()).Return(0, nil)

	app.Run()

	assert.Equal(t, 1, shutdowner.calls)
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	app := NewApp(cli.NewMockCLI(ctrl), &mockShutdowner{}, logger.NewMockLogger(ctrl))

	var hooks []fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { hooks = append(hooks, hook) }}, app)

	require.Len(t, hooks, 1)
	assert.NotNil(t, hooks[0].OnStart)
	assert.NotNil(t, hooks[0].OnStop)
}

func Test_Register_StartThenStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCLI := cli.NewMockCLI(ctrl)
	shutdowner := &mockShutdowner{}
	app := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	mockCLI.EXPECT().Execute(gomock.Any()).DoAndReturn(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, nil
	})

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	require.NoError(t, hook.OnStart(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, hook.OnStop(ctx))
	assert.ErrorIs(t, app.ctx.Err(), context.Canceled)
}

func Test_Register_StopTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCLI := cli.NewMockCLI(ctrl)
	app := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hook.OnStop(ctx), context.Canceled)
}
