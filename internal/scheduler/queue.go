package scheduler

import "github.com/thenoetrevino/priosched/internal/models"

// Before reports whether task a is drained before task b.
//
// Ordering:
//  1. Higher priority tier first
//  2. Fixed before Floating within a tier
//  3. Between fixed tasks, the lexicographically greater start time first
//
// Rule 3 compares start times as plain strings and puts the later string first.
// Callers relying on "earliest first" must not assume it.
func Before(a, b models.Task) bool {
	if a.Priority != b.Priority {
		return a.Priority.Outranks(b.Priority)
	}
	if a.Kind != b.Kind {
		return a.IsFixed()
	}
	if a.IsFixed() {
		return a.StartTime > b.StartTime
	}
	return false
}

// entry pairs a task with its insertion sequence so ties drain in arrival order
type entry struct {
	task models.Task
	seq  uint64
}

// taskHeap implements heap.Interface. The root is the next task to drain.
type taskHeap []entry

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if Before(h[i].task, h[j].task) {
		return true
	}
	if Before(h[j].task, h[i].task) {
		return false
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(entry))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*h = old[:n-1]
	return e
}
