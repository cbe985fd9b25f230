// Package lifecycle ties component shutdown to OS termination signals.
package lifecycle

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// StopFunc stops a component. It receives a context carrying the shutdown
// deadline.
type StopFunc func(ctx context.Context) error

type component struct {
	name string
	stop StopFunc
}

// Manager collects components that need an orderly stop and runs them in
// reverse registration order once a termination signal arrives.
type Manager struct {
	timeout    time.Duration
	logger     *zap.Logger
	components []component

	ctx    context.Context
	cancel context.CancelFunc
}

func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	return &Manager{
		timeout: timeout,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Context is cancelled when a termination signal arrives.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// OnStop registers a component. Registration happens during startup wiring,
// before Wait, so no locking is needed.
func (m *Manager) OnStop(name string, stop StopFunc) {
	if stop == nil {
		return
	}
	m.components = append(m.components, component{name: name, stop: stop})
}

// Wait blocks until a termination signal, then stops every registered
// component in reverse order, bounded by the shutdown timeout. All stop
// errors are joined into the result.
func (m *Manager) Wait() error {
	<-m.ctx.Done()
	m.cancel()
	m.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	var result error
	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]
		if err := c.stop(ctx); err != nil {
			m.logger.Error("component stop failed", zap.String("component", c.name), zap.Error(err))
			result = errors.Join(result, err)
			continue
		}
		m.logger.Info("component stopped", zap.String("component", c.name))
	}
	return result
}
