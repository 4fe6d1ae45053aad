// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/mock"
)

// countingWorker tracks how many times each lifecycle method was called.
type countingWorker struct {
	runCount  int
	stopCount int
}

func (w *countingWorker) Run()  { w.runCount++ }
func (w *countingWorker) Stop() { w.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()
	ws.Stop()

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d] run count", i)
		assert.Equal(t, 1, w.stopCount, "worker[%d] stop count", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// must not panic with no workers
	ws.Run()
	ws.Stop()
}

func TestThrottleJanitor_Sweeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	throttle := mock.NewMockThrottleService(ctrl)

	swept := make(chan struct{})
	throttle.EXPECT().Sweep().DoAndReturn(func() int {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 1
	}).MinTimes(1)

	janitor := newThrottleJanitor(throttle, 5*time.Millisecond, logger.Nop())
	janitor.Run()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never swept")
	}

	janitor.Stop()
}

func TestThrottleJanitor_StopTerminatesLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	throttle := mock.NewMockThrottleService(ctrl)
	throttle.EXPECT().Sweep().Return(0).AnyTimes()

	janitor := newThrottleJanitor(throttle, time.Millisecond, logger.Nop())
	janitor.Run()

	done := make(chan struct{})
	go func() {
		janitor.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestThrottleJanitor_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	throttle := mock.NewMockThrottleService(ctrl)

	janitor := newThrottleJanitor(throttle, 0, logger.Nop())
	require.Equal(t, defaultSweepInterval, janitor.interval)
}
