package util

import (
	"os"
	"time"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp restricts a value to a range
func Clamp[T Number](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// TimeTrack returns the time elapsed since start, for use with defer:
//
//	defer func(start time.Time) { log.Debugf("took %v", util.TimeTrack(start)) }(time.Now())
func TimeTrack(start time.Time) time.Duration {
	return time.Since(start).Round(time.Microsecond)
}

// FrameClock measures the time between consecutive frames
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// NewFrameClock starts a clock at the current time
func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{last: now(), now: now}
}

// Tick returns the seconds elapsed since the previous tick
func (c *FrameClock) Tick() float64 {
	current := c.now()
	delta := current.Sub(c.last).Seconds()
	c.last = current
	return delta
}
