package collector

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabalesh/uptop/internal/models"
)

// scriptedReader returns readings in order, repeating the last one.
type scriptedReader struct {
	mu       sync.Mutex
	readings []models.InterfaceCounters
	failAt   int
	calls    int
}

func (r *scriptedReader) read(name string) (models.InterfaceCounters, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failAt > 0 && r.calls >= r.failAt {
		return models.InterfaceCounters{}, errors.New("device gone")
	}
	i := r.calls - 1
	if i >= len(r.readings) {
		i = len(r.readings) - 1
	}
	c := r.readings[i]
	c.Name = name
	return c, nil
}

func TestSamplerRun(t *testing.T) {
	mb := uint64(1024 * 1024)
	reader := &scriptedReader{readings: []models.InterfaceCounters{
		{RxBytes: 0, TxBytes: 0},
		{RxBytes: 2 * mb, TxBytes: mb},
		{RxBytes: 3 * mb, TxBytes: mb},
	}}

	s := NewSampler(reader.read, "wlan0", 5*time.Millisecond, 40*time.Millisecond)

	var live []models.NetSample
	samples, err := s.Run(context.Background(), func(ns models.NetSample) {
		live = append(live, ns)
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(samples), 3)
	assert.Equal(t, samples, live)

	assert.Equal(t, 2.0, samples[0].RxMB)
	assert.Equal(t, 1.0, samples[0].TxMB)
	assert.Equal(t, 1.0, samples[1].RxMB)
	assert.Equal(t, 0.0, samples[1].TxMB)
	assert.Equal(t, 0.0, samples[2].RxMB)
}

func TestSamplerBaselineFailure(t *testing.T) {
	reader := &scriptedReader{failAt: 1}
	s := NewSampler(reader.read, "wlan9", time.Millisecond, time.Millisecond)

	samples, err := s.Run(context.Background(), nil)
	assert.Nil(t, samples)
	assert.ErrorContains(t, err, "baseline")
}

func TestSamplerReadFailureKeepsSamples(t *testing.T) {
	reader := &scriptedReader{
		readings: []models.InterfaceCounters{{}, {RxBytes: 10}},
		failAt:   3,
	}
	s := NewSampler(reader.read, "wlan0", time.Millisecond, time.Hour)

	samples, err := s.Run(context.Background(), nil)
	assert.Error(t, err)
	assert.Len(t, samples, 1)
}

func TestSamplerCancel(t *testing.T) {
	reader := &scriptedReader{readings: []models.InterfaceCounters{{}}}
	s := NewSampler(reader.read, "wlan0", time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSamplerRejectsBadTiming(t *testing.T) {
	s := NewSampler(nil, "wlan0", 0, time.Second)
	_, err := s.Run(context.Background(), nil)
	assert.Error(t, err)
}
