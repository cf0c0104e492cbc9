package scheduler

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/priosched/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func drainAll(t *testing.T, s *Scheduler) []models.Task {
	t.Helper()
	var out []models.Task
	_, err := s.Drain(func(task models.Task) error {
		out = append(out, task)
		return nil
	})
	require.NoError(t, err)
	return out
}

func names(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Name
	}
	return out
}

// ============================================================================
// COMPARATOR
// ============================================================================

func TestBefore(t *testing.T) {
	tests := []struct {
		name string
		a    models.Task
		b    models.Task
		want bool
	}{
		{
			name: "higher tier first",
			a:    models.NewFloatingTask("a", models.PriorityHigh),
			b:    models.NewFixedTask("b", models.PriorityMedium, "08:00", ""),
			want: true,
		},
		{
			name: "lower tier after",
			a:    models.NewFixedTask("a", models.PriorityLow, "08:00", ""),
			b:    models.NewFloatingTask("b", models.PriorityMedium),
			want: false,
		},
		{
			name: "fixed before floating in same tier",
			a:    models.NewFixedTask("a", models.PriorityMedium, "08:00", ""),
			b:    models.NewFloatingTask("b", models.PriorityMedium),
			want: true,
		},
		{
			name: "floating after fixed in same tier",
			a:    models.NewFloatingTask("a", models.PriorityMedium),
			b:    models.NewFixedTask("b", models.PriorityMedium, "08:00", ""),
			want: false,
		},
		{
			name: "later start string first between fixed tasks",
			a:    models.NewFixedTask("a", models.PriorityHigh, "09:00", ""),
			b:    models.NewFixedTask("b", models.PriorityHigh, "08:00", ""),
			want: true,
		},
		{
			name: "earlier start string after",
			a:    models.NewFixedTask("a", models.PriorityHigh, "08:00", ""),
			b:    models.NewFixedTask("b", models.PriorityHigh, "09:00", ""),
			want: false,
		},
		{
			name: "floating tasks in same tier are unordered",
			a:    models.NewFloatingTask("a", models.PriorityLow),
			b:    models.NewFloatingTask("b", models.PriorityLow),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Before(tt.a, tt.b))
		})
	}
}

// ============================================================================
// SCHEDULER
// ============================================================================

func TestSchedulerEmpty(t *testing.T) {
	s := New()

	assert.True(t, s.IsEmpty())
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	n, err := s.Drain(func(models.Task) error {
		t.Fatal("visit called on empty scheduler")
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSchedulerDrainOrder(t *testing.T) {
	s := New()
	s.Push(models.NewFloatingTask("Study", models.PriorityLow))
	s.Push(models.NewFixedTask("Meeting", models.PriorityHigh, "08:00", ""))
	s.Push(models.NewFloatingTask("Email", models.PriorityHigh))
	s.Push(models.NewFixedTask("Workout", models.PriorityMedium, "06:00", "07:30"))
	s.Push(models.NewFixedTask("Standup", models.PriorityHigh, "09:30", ""))
	s.Push(models.NewFixedTask("Lunch", models.PriorityLow, "12:00", "13:00"))

	assert.Equal(t, 6, s.Len())

	got := names(drainAll(t, s))
	want := []string{"Standup", "Meeting", "Email", "Workout", "Lunch", "Study"}
	assert.Equal(t, want, got)
	assert.True(t, s.IsEmpty())
}

func TestSchedulerFloatingTiesKeepArrivalOrder(t *testing.T) {
	s := New()
	s.Push(models.NewFloatingTask("first", models.PriorityMedium))
	s.Push(models.NewFloatingTask("second", models.PriorityMedium))
	s.Push(models.NewFloatingTask("third", models.PriorityMedium))

	assert.Equal(t, []string{"first", "second", "third"}, names(drainAll(t, s)))
}

func TestSchedulerPeekDoesNotRemove(t *testing.T) {
	s := New()
	s.Push(models.NewFloatingTask("low", models.PriorityLow))
	s.Push(models.NewFloatingTask("high", models.PriorityHigh))

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "high", top.Name)
	assert.Equal(t, 2, s.Len())
}

func TestSchedulerDrainStopsOnError(t *testing.T) {
	s := New()
	s.Push(models.NewFloatingTask("a", models.PriorityHigh))
	s.Push(models.NewFloatingTask("b", models.PriorityLow))

	boom := errors.New("write failed")
	n, err := s.Drain(func(models.Task) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())
}

// TestSchedulerDrainProperties checks tier ordering, the fixed/floating split
// and the drained count over randomized inputs.
func TestSchedulerDrainProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		s := New()
		count := rng.Intn(40)
		for i := 0; i < count; i++ {
			priority := models.PriorityFromCode(rng.Intn(4))
			if rng.Intn(2) == 0 {
				start := string(rune('a' + rng.Intn(26)))
				s.Push(models.NewFixedTask("fx", priority, start, ""))
			} else {
				s.Push(models.NewFloatingTask("fl", priority))
			}
		}

		drained := drainAll(t, s)
		require.Len(t, drained, count)

		for i := 1; i < len(drained); i++ {
			prev, cur := drained[i-1], drained[i]
			assert.False(t, cur.Priority.Outranks(prev.Priority), "tier increased at %d", i)
			if prev.Priority == cur.Priority {
				assert.False(t, !prev.IsFixed() && cur.IsFixed(), "fixed after floating at %d", i)
				if prev.IsFixed() && cur.IsFixed() {
					assert.GreaterOrEqual(t, prev.StartTime, cur.StartTime)
				}
			}
		}
	}
}
