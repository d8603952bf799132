package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecognizeDelta(t *testing.T) {
	cfg := DefaultSwipeConfig()
	tests := []struct {
		name    string
		dx, dy  float64
		elapsed time.Duration
		want    Swipe
	}{
		{"forward swipe", 80, 10, 200 * time.Millisecond, SwipeForward},
		{"backward swipe", -80, 10, 200 * time.Millisecond, SwipeBackward},
		{"vertical dominates", 80, 90, 200 * time.Millisecond, SwipeNone},
		{"equal displacement", 80, -80, 200 * time.Millisecond, SwipeNone},
		{"below threshold", 50, 0, 100 * time.Millisecond, SwipeNone},
		{"just over threshold", 51, 0, 100 * time.Millisecond, SwipeForward},
		{"too slow", 200, 0, 500 * time.Millisecond, SwipeNone},
		{"just fast enough", 200, 0, 499 * time.Millisecond, SwipeForward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecognizeDelta(tt.dx, tt.dy, tt.elapsed, cfg))
		})
	}
}

func TestRecognizePoints(t *testing.T) {
	t0 := time.Unix(100, 0)
	start := Point{X: 300, Y: 100, At: t0}
	end := Point{X: 220, Y: 90, At: t0.Add(200 * time.Millisecond)}
	assert.Equal(t, SwipeForward, Recognize(start, end, DefaultSwipeConfig()), "finger moved left")
	assert.Equal(t, SwipeNone, Recognize(start, Point{X: 220, Y: 10, At: end.At}, DefaultSwipeConfig()))
}
