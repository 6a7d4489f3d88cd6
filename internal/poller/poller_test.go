// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/presence-lamp/internal/status"
)

type fakeClient struct {
	payload []byte
	err     error
	calls   int
}

func (f *fakeClient) Fetch() ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Interval: 0}, &fakeClient{})
	require.Error(t, err)

	_, err = New(Config{Interval: time.Second}, nil)
	require.Error(t, err)
}

func TestPollOnce_Success(t *testing.T) {
	client := &fakeClient{
		payload: []byte(`{"players":{"online":2,"sample":[{"name":"Alice"},{"name":"Bob"}]}}`),
	}

	p, err := New(Config{Interval: time.Second}, client)
	require.NoError(t, err)

	res := p.PollOnce()
	require.NoError(t, res.Err)

	assert.False(t, res.Record.Failed)
	assert.Equal(t, 2, res.Record.OnlineCount)
	assert.Equal(t, []string{"Alice", "Bob"}, res.Record.Names)
	assert.False(t, res.At.IsZero())
}

func TestPollOnce_FetchFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}

	p, err := New(Config{Interval: time.Second}, client)
	require.NoError(t, err)

	res := p.PollOnce()
	require.Error(t, res.Err)

	// all-or-nothing: the failed record carries no data
	assert.True(t, res.Record.Failed)
	assert.Equal(t, 0, res.Record.OnlineCount)
	assert.Empty(t, res.Record.Names)
}

func TestPollOnce_ParseFailure(t *testing.T) {
	client := &fakeClient{payload: []byte(`{"version":"1.20"}`)}

	p, err := New(Config{Interval: time.Second}, client)
	require.NoError(t, err)

	res := p.PollOnce()
	require.ErrorIs(t, res.Err, status.ErrMissingPresence)
	assert.True(t, res.Record.Failed)
}

func TestRun_CycleCompletesBeforeDelayAndStopsOnCancel(t *testing.T) {
	client := &fakeClient{payload: []byte(`{"players":{"online":0}}`)}

	p, err := New(Config{Interval: 5 * time.Millisecond}, client)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	cycles := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx, func(res PollResult) {
			require.NoError(t, res.Err)
			cycles++
			if cycles == 3 {
				cancel()
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}

	assert.Equal(t, 3, cycles)
	assert.Equal(t, 3, client.calls)
}
