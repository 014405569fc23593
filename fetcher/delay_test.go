package fetcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDelayNext(t *testing.T) {
	tests := []struct {
		name string
		d    Delay
		min  time.Duration
		max  time.Duration
	}{
		{"zero value", Delay{}, 0, 0},
		{"fixed", Delay{Min: 50 * time.Millisecond, Max: 50 * time.Millisecond}, 50 * time.Millisecond, 50 * time.Millisecond},
		{"range", Delay{Min: time.Second, Max: 3 * time.Second}, time.Second, 3 * time.Second},
		{"inverted falls back to min", Delay{Min: 2 * time.Second, Max: time.Second}, 2 * time.Second, 2 * time.Second},
		{"negative clamps to zero", Delay{Min: -time.Second}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got := tt.d.Next()
				require.GreaterOrEqual(t, got, tt.min)
				require.LessOrEqual(t, got, tt.max)
			}
		})
	}
}

func TestDelayWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Delay{Min: time.Minute, Max: time.Minute}.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}

func TestDelayWaitZero(t *testing.T) {
	require.NoError(t, Delay{}.Wait(context.Background()))
}
