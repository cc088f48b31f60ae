package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type panickingWorker struct {
	calls atomic.Int32
}

func (w *panickingWorker) Run(ctx context.Context) error {
	w.calls.Add(1)
	panic("boom")
}

type oneShotWorker struct {
	calls atomic.Int32
}

func (w *oneShotWorker) Run(ctx context.Context) error {
	w.calls.Add(1)
	return nil
}

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	worker := &panickingWorker{}

	sup := NewSupervisor(log, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	go sup.Add(worker).Run(ctx)

	// Waiting for panics and restarts
	time.Sleep(400 * time.Millisecond)

	req.GreaterOrEqual(worker.calls.Load(), int32(2))
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	worker := &oneShotWorker{}

	sup := NewSupervisor(log, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sup.Add(worker).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("supervisor did not stop after worker success")
	}
	// A cleanly finished worker is never restarted
	req.Equal(int32(1), worker.calls.Load())
}
