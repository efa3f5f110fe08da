package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerNeverRunsOnSchedulingTick(t *testing.T) {
	s := NewScheduler[string]()
	s.Schedule(100, 1, "a")

	assert.Empty(t, s.PopDue(100, 1))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"a"}, s.PopDue(100, 2))
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler[string]()
	s.Schedule(200, 1, "late")
	s.Schedule(100, 1, "early")
	s.Schedule(100, 2, "early2")
	s.Schedule(500, 1, "future")

	assert.Empty(t, s.PopDue(50, 9))
	assert.Equal(t, []string{"early", "early2", "late"}, s.PopDue(300, 5))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.PopDue(1000, 10))
}
