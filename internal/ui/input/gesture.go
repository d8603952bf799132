package input

import (
	"math"
	"time"
)

// Swipe is a recognised horizontal gesture
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeForward
	SwipeBackward
)

// Point is a pointer position in pointer units with its timestamp
type Point struct {
	X, Y float64
	At   time.Time
}

// SwipeConfig bounds what counts as a swipe
type SwipeConfig struct {
	Threshold   float64       // minimum horizontal travel
	MaxDuration time.Duration // gesture must finish faster than this
}

// DefaultSwipeConfig matches touch behaviour of the reference deck
func DefaultSwipeConfig() SwipeConfig {
	return SwipeConfig{Threshold: 50, MaxDuration: 500 * time.Millisecond}
}

// Recognize classifies a start/end pair
func Recognize(start, end Point, cfg SwipeConfig) Swipe {
	return RecognizeDelta(start.X-end.X, start.Y-end.Y, end.At.Sub(start.At), cfg)
}

// RecognizeDelta classifies a displacement. deltaX is start minus end, so a
// positive value means the pointer moved left, which advances.
func RecognizeDelta(deltaX, deltaY float64, elapsed time.Duration, cfg SwipeConfig) Swipe {
	ax, ay := math.Abs(deltaX), math.Abs(deltaY)
	if ax <= ay || ax <= cfg.Threshold || elapsed >= cfg.MaxDuration {
		return SwipeNone
	}
	if deltaX > 0 {
		return SwipeForward
	}
	return SwipeBackward
}
