package coverage

import (
	"context"
	"sync"
	"time"
)

// Replayer plays a computed ground track back in sample order, pacing the
// playback by the gaps between sample timestamps divided by Speed. Speed 1
// replays in real time, 60 replays a minute of track per second, and 0 (or
// negative) replays as fast as the listeners can keep up.
type Replayer struct {
	mu      sync.RWMutex
	points  []Point
	speed   float64
	current Point

	listeners []func(Point)
}

// NewReplayer constructs a replayer over an already-computed track.
func NewReplayer(points []Point, speed float64) *Replayer {
	r := &Replayer{points: points, speed: speed}
	if len(points) > 0 {
		r.current = points[0]
	}
	return r
}

// Current returns the most recently replayed sample.
func (r *Replayer) Current() Point {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnSample registers a callback invoked for every replayed sample, in track
// order. Callbacks run on the replay goroutine; a slow callback slows the
// replay. Register before calling Start.
func (r *Replayer) OnSample(fn func(Point)) {
	r.listeners = append(r.listeners, fn)
}

// Start begins the replay in a separate goroutine and returns a channel that
// is closed when the last sample has been delivered or the context ends.
func (r *Replayer) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		for i, p := range r.points {
			if i > 0 && r.speed > 0 {
				gap := p.Time.Sub(r.points[i-1].Time)
				if wait := time.Duration(float64(gap) / r.speed); wait > 0 {
					timer := time.NewTimer(wait)
					select {
					case <-ctx.Done():
						timer.Stop()
						return
					case <-timer.C:
					}
				}
			} else if ctx.Err() != nil {
				return
			}

			r.mu.Lock()
			r.current = p
			r.mu.Unlock()

			for _, fn := range r.listeners {
				fn(p)
			}
		}
	}()
	return done
}
