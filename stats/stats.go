// package stats tracks frame rate, GPU submission counts and memory usage for
// performance monitoring. Output goes to the log at a configurable interval.
package stats

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/core"
)

// Tracker accumulates per-frame statistics and periodically logs them. It
// drains the context's submission counters every frame, so it must be the
// only consumer of ResetStats.
type Tracker struct {
	ctx            *core.Context
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats

	drawCalls        uint64
	uniformTransfers uint64
	bufferUploads    uint64
	textureUploads   uint64
}

// NewTracker creates a Tracker for the given context. Update interval
// defaults to 1 second.
//
// Parameters:
//   - ctx: the context whose submission counters are sampled
//
// Returns:
//   - *Tracker: the newly created tracker
func NewTracker(ctx *core.Context) *Tracker {
	return &Tracker{
		ctx:            ctx,
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetInterval changes the logging interval. A zero interval falls back to
// the 1 second default.
func (t *Tracker) SetInterval(interval time.Duration) {
	t.updateInterval = common.Coalesce(interval, time.Second)
}

// Tick should be called once per frame after rendering. It samples and resets
// the context counters and logs aggregate statistics when the update interval
// has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (t *Tracker) Tick() bool {
	t.frameCount++
	s := t.ctx.Stats()
	t.ctx.ResetStats()
	t.drawCalls += s.DrawCalls
	t.uniformTransfers += s.UniformTransfers
	t.bufferUploads += s.BufferUploads
	t.textureUploads += s.TextureUploads

	currentTime := time.Now()
	elapsed := currentTime.Sub(t.lastTime)
	if elapsed < t.updateInterval {
		return false
	}

	frames := float64(t.frameCount)
	fps := frames / elapsed.Seconds()
	runtime.ReadMemStats(&t.memStats)
	heapMB := float64(t.memStats.Alloc) / 1024 / 1024

	log.Printf("[Stats] FPS: %.2f | Draws/frame: %.1f | Uniforms/frame: %.1f | Uploads/frame: %.1f buf, %.1f tex | Heap: %.2f MB",
		fps,
		float64(t.drawCalls)/frames,
		float64(t.uniformTransfers)/frames,
		float64(t.bufferUploads)/frames,
		float64(t.textureUploads)/frames,
		heapMB)

	t.frameCount = 0
	t.drawCalls = 0
	t.uniformTransfers = 0
	t.bufferUploads = 0
	t.textureUploads = 0
	t.lastTime = currentTime
	return true
}
