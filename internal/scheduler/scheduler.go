package scheduler

import (
	"container/heap"

	"github.com/thenoetrevino/priosched/internal/models"
)

// Scheduler owns accepted tasks and hands them back in priority order
type Scheduler struct {
	tasks taskHeap
	seq   uint64
}

// New creates an empty Scheduler
func New() *Scheduler {
	return &Scheduler{}
}

// Push adds a task
func (s *Scheduler) Push(task models.Task) {
	heap.Push(&s.tasks, entry{task: task, seq: s.seq})
	s.seq++
}

// Pop removes and returns the highest-priority task.
// The second return value is false when the scheduler is empty.
func (s *Scheduler) Pop() (models.Task, bool) {
	if s.tasks.Len() == 0 {
		return models.Task{}, false
	}
	e := heap.Pop(&s.tasks).(entry)
	return e.task, true
}

// Peek returns the highest-priority task without removing it
func (s *Scheduler) Peek() (models.Task, bool) {
	if s.tasks.Len() == 0 {
		return models.Task{}, false
	}
	return s.tasks[0].task, true
}

// Len returns the number of tasks still held
func (s *Scheduler) Len() int {
	return s.tasks.Len()
}

// IsEmpty reports whether no tasks are held
func (s *Scheduler) IsEmpty() bool {
	return s.tasks.Len() == 0
}

// Drain pops every task in priority order, calling visit on each as it is removed.
// It stops at the first error returned by visit. The number of visited tasks is returned.
func (s *Scheduler) Drain(visit func(models.Task) error) (int, error) {
	drained := 0
	for {
		task, ok := s.Pop()
		if !ok {
			return drained, nil
		}
		drained++
		if err := visit(task); err != nil {
			return drained, err
		}
	}
}
