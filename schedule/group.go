package schedule

import "time"

// Group tracks the tasks scheduled through it so they can be cancelled
// together, e.g. everything belonging to one round.
type Group struct {
	s       *Scheduler
	handles []*Handle
	stopped bool
}

// NewGroup returns an empty group on s.
func (s *Scheduler) NewGroup() *Group {
	return &Group{s: s}
}

// After schedules a one-shot task owned by the group. On a stopped group it
// returns an inactive handle and never runs fn.
func (g *Group) After(delay time.Duration, fn func()) *Handle {
	if g.stopped {
		return &Handle{task: &task{stopped: true}}
	}
	return g.track(g.s.After(delay, fn))
}

// Every schedules a periodic task owned by the group.
func (g *Group) Every(interval time.Duration, fn func()) *Handle {
	if g.stopped {
		return &Handle{task: &task{stopped: true}}
	}
	return g.track(g.s.Every(interval, fn))
}

func (g *Group) track(h *Handle) *Handle {
	// Drop handles that can no longer run so long rounds don't grow the slice.
	live := g.handles[:0]
	for _, old := range g.handles {
		if old.Active() {
			live = append(live, old)
		}
	}
	g.handles = append(live, h)
	return h
}

// Stop cancels every task the group scheduled. Later calls to After and
// Every on the group are no-ops.
func (g *Group) Stop() {
	g.stopped = true
	for _, h := range g.handles {
		h.Stop()
	}
	g.handles = nil
}

// Active returns the number of group tasks that may still run.
func (g *Group) Active() int {
	n := 0
	for _, h := range g.handles {
		if h.Active() {
			n++
		}
	}
	return n
}
