package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
	
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (f *fakeServer) Start() { f.started.Store(true) }
func (f *fakeServer) Stop()  { f.stopped.Store(true) }

func TestRunStopsServersOnCancel(t *testing.T) {
	first, second := &fakeServer{}, &fakeServer{}
	a := NewApp(WithName("test"), WithServer(first), WithServer(second))
	
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	
	require.Eventually(t, func() bool {
		return first.started.Load() && second.started.Load()
	}, time.Second, 5*time.Millisecond)
	cancel()
	
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, first.stopped.Load())
	assert.True(t, second.stopped.Load())
}
