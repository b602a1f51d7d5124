// Package schedule runs one-shot and periodic tasks on a virtual clock.
//
// The clock only moves when the owner calls Advance, normally once per game
// tick, so every task runs on the caller's goroutine and needs no locking.
package schedule

import (
	"container/heap"
	"time"
)

// Scheduler owns the virtual clock and the queue of pending tasks.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// Handle cancels a scheduled task. The zero value is not usable.
type Handle struct {
	task *task
}

type task struct {
	due      time.Duration
	interval time.Duration // zero for one-shot tasks
	seq      uint64
	fn       func()
	stopped  bool
	fired    bool
}

// New returns a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks that may still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// After runs fn once, delay after the current virtual time.
func (s *Scheduler) After(delay time.Duration, fn func()) *Handle {
	if delay < 0 {
		delay = 0
	}
	return s.push(s.now+delay, 0, fn)
}

// Every runs fn each interval until the returned handle is stopped. The
// first run happens one interval from now. Non-positive intervals are
// clamped to one nanosecond.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return s.push(s.now+interval, interval, fn)
}

func (s *Scheduler) push(due, interval time.Duration, fn func()) *Handle {
	s.seq++
	t := &task{due: due, interval: interval, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	return &Handle{task: t}
}

// Advance moves the clock forward by dt and runs every task that comes due,
// in due-time order. Ties run in scheduling order. A periodic task runs once
// per elapsed interval. Tasks scheduled by a callback run in the same call
// if they come due before the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.stopped {
			heap.Pop(&s.queue)
			continue
		}
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due

		if next.interval > 0 {
			next.due += next.interval
			s.seq++
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			next.fired = true
		}
		next.fn()
	}
	s.now = target
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	for _, t := range s.queue {
		t.stopped = true
	}
	s.queue = s.queue[:0]
}

// Stop cancels the task. Stopping a task that already ran or was stopped is
// a no-op.
func (h *Handle) Stop() {
	if h == nil || h.task == nil {
		return
	}
	h.task.stopped = true
}

// Active reports whether the task may still run.
func (h *Handle) Active() bool {
	if h == nil || h.task == nil {
		return false
	}
	return !h.task.stopped && !h.task.fired
}

// taskQueue is a min-heap on (due, seq).
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*task))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
