package bounce3d

import (
	"log"
	"time"
)

// FrameStats measures real time between ticks and logs the frame rate every
// Interval. The measured time is informational only; it never changes the
// simulation step.
type FrameStats struct {
	Interval   time.Duration
	frameCount int
	lastTime   time.Time
	lastTick   time.Time
	lastFrame  time.Duration
	now        func() time.Time
}

func NewFrameStats(interval time.Duration) *FrameStats {
	if interval <= 0 {
		interval = time.Second
	}
	fs := &FrameStats{
		Interval: interval,
		now:      time.Now,
	}
	fs.lastTime = fs.now()
	fs.lastTick = fs.lastTime
	return fs
}

// Tick should be called once per frame. It returns true when stats were
// logged.
func (fs *FrameStats) Tick(live int) bool {
	fs.frameCount++
	current := fs.now()
	fs.lastFrame = current.Sub(fs.lastTick)
	fs.lastTick = current

	elapsed := current.Sub(fs.lastTime)
	if elapsed < fs.Interval {
		return false
	}

	fps := float64(fs.frameCount) / elapsed.Seconds()
	log.Printf("[Stats] FPS: %.1f | Spheres: %d | Last frame: %v", fps, live, fs.lastFrame)

	fs.frameCount = 0
	fs.lastTime = current
	return true
}

// LastFrame is the wall-clock time between the two most recent ticks.
func (fs *FrameStats) LastFrame() time.Duration {
	return fs.lastFrame
}
