package core

import (
	"container/heap"
	"time"
)

type timerTask struct {
	id       int64
	execute  time.Duration
	callback func()
	index    int
}

type timerQueue []*timerTask

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].execute == q[j].execute {
		return q[i].id < q[j].id
	}
	return q[i].execute < q[j].execute
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	task := x.(*timerTask)
	task.index = len(*q)
	*q = append(*q, task)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	task := old[n-1]
	task.index = -1
	*q = old[:n-1]
	return task
}

// Scheduler runs deferred callbacks against simulated frame time.
// It has no goroutine of its own: callbacks fire from Advance, on the
// caller's goroutine, so game state never needs locking.
type Scheduler struct {
	now    time.Duration
	queue  timerQueue
	nextID int64
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	s := &Scheduler{nextID: 1}
	heap.Init(&s.queue)
	return s
}

// After schedules fn to run once at least delay of frame time has passed.
// Returns an id usable with Cancel.
func (s *Scheduler) After(delay time.Duration, fn func()) int64 {
	task := &timerTask{
		id:       s.nextID,
		execute:  s.now + delay,
		callback: fn,
	}
	s.nextID++
	heap.Push(&s.queue, task)
	return task.id
}

// Cancel removes a pending callback. Unknown ids are ignored.
func (s *Scheduler) Cancel(id int64) {
	for i, task := range s.queue {
		if task.id == id {
			heap.Remove(&s.queue, i)
			return
		}
	}
}

// Advance moves the clock forward by dt and runs every due callback in
// deadline order. Callbacks scheduled during Advance with zero delay run in
// the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt
	for s.queue.Len() > 0 && s.queue[0].execute <= s.now {
		task := heap.Pop(&s.queue).(*timerTask)
		task.callback()
	}
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}
