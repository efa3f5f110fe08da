package engine

import "sort"

// Scheduler is a simulation-time task queue.
//
// A task becomes runnable once the clock reaches its due time, and never on
// the tick that scheduled it: work queued during tick N runs at tick N+1 at
// the earliest. Tasks run in due-time order, ties in scheduling order.
type Scheduler[T any] struct {
	tasks []scheduled[T]
	seq   uint64
}

type scheduled[T any] struct {
	due     float64
	tick    uint64
	seq     uint64
	payload T
}

// NewScheduler returns an empty queue.
func NewScheduler[T any]() *Scheduler[T] {
	return &Scheduler[T]{}
}

// Schedule queues payload to run at due, recording the tick it was queued on.
func (s *Scheduler[T]) Schedule(due float64, tick uint64, payload T) {
	s.seq++
	t := scheduled[T]{due: due, tick: tick, seq: s.seq, payload: payload}

	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due > due
	})
	s.tasks = append(s.tasks, scheduled[T]{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

// PopDue removes and returns every task runnable at (now, tick), in order.
func (s *Scheduler[T]) PopDue(now float64, tick uint64) []T {
	var due []T
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= now && t.tick < tick {
			due = append(due, t.payload)
			continue
		}
		kept = append(kept, t)
	}
	// Zero the tail so dropped payloads can be collected.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = scheduled[T]{}
	}
	s.tasks = kept
	return due
}

// Len returns the number of queued tasks.
func (s *Scheduler[T]) Len() int {
	return len(s.tasks)
}

// Clear drops every queued task.
func (s *Scheduler[T]) Clear() {
	s.tasks = nil
}
