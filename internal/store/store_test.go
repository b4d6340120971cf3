package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/internal/domain"
)

var (
	mar10 = domain.NewDate(2024, time.March, 10)
	mar11 = domain.NewDate(2024, time.March, 11)
)

func TestAddDaily(t *testing.T) {
	s := New()

	s.AddDaily(mar10, "Buy milk")
	assert.Equal(t, 1, s.CountForDate(mar10))

	s.AddDaily(mar10, "Call bank")
	assert.Equal(t, 2, s.CountForDate(mar10))

	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.Equal(t, "Call bank", tasks[1].Text)
	assert.False(t, tasks[0].Done)
	assert.False(t, tasks[1].Done)
}

func TestAddDailyTrimsText(t *testing.T) {
	s := New()

	s.AddDaily(mar10, "  Buy milk  ")

	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
}

func TestAddDailyNoops(t *testing.T) {
	s := New()

	t.Run("whitespace only text", func(t *testing.T) {
		s.AddDaily(mar10, "  ")
		assert.Equal(t, 0, s.CountForDate(mar10))
	})

	t.Run("empty text", func(t *testing.T) {
		s.AddDaily(mar10, "")
		assert.Equal(t, 0, s.CountForDate(mar10))
	})

	t.Run("zero date", func(t *testing.T) {
		s.AddDaily(domain.Date{}, "Buy milk")
		assert.Empty(t, s.Dates())
	})
}

func TestAddDailyAllowsDuplicates(t *testing.T) {
	s := New()

	s.AddDaily(mar10, "Buy milk")
	s.AddDaily(mar10, "Buy milk")

	assert.Equal(t, 2, s.CountForDate(mar10))
}

func TestToggleDaily(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")

	s.ToggleDaily(mar10, 0)
	assert.True(t, s.TasksOn(mar10)[0].Done)

	// toggling twice restores the original state
	s.ToggleDaily(mar10, 0)
	assert.False(t, s.TasksOn(mar10)[0].Done)
}

func TestToggleDailyNoops(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")

	s.ToggleDaily(mar11, 0)  // absent date
	s.ToggleDaily(mar10, 1)  // index past the end
	s.ToggleDaily(mar10, -1) // negative index

	assert.False(t, s.TasksOn(mar10)[0].Done)
}

func TestDeleteDaily(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")
	s.AddDaily(mar10, "Call bank")

	s.DeleteDaily(mar10, 0)

	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call bank", tasks[0].Text)
}

func TestDeleteDailyPrunesEmptyDate(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")

	s.DeleteDaily(mar10, 0)

	// the key must be gone, not merely mapped to an empty list
	_, exists := s.byDate[mar10]
	assert.False(t, exists)
	assert.Equal(t, 0, s.CountForDate(mar10))
}

func TestDeleteDailyNoops(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")

	s.DeleteDaily(mar11, 0)
	s.DeleteDaily(mar10, 5)
	s.DeleteDaily(mar10, -1)

	assert.Equal(t, 1, s.CountForDate(mar10))
}

func TestMoveDailyToLongTerm(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")
	s.AddDaily(mar10, "Call bank")
	s.ToggleDaily(mar10, 0)

	s.MoveDailyToLongTerm(mar10, 0)

	assert.Equal(t, []string{"Buy milk"}, s.LongTerm())
	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call bank", tasks[0].Text)
}

func TestMoveDailyToLongTermPrunesEmptyDate(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")

	s.MoveDailyToLongTerm(mar10, 0)

	_, exists := s.byDate[mar10]
	assert.False(t, exists)
	assert.Equal(t, []string{"Buy milk"}, s.LongTerm())
}

func TestMoveRoundTrip(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")
	s.ToggleDaily(mar10, 0) // done before the move

	s.MoveDailyToLongTerm(mar10, 0)
	s.MoveLongTermToDaily(mar10, 0)

	// text survives, done resets regardless of prior state
	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.False(t, tasks[0].Done)
	assert.Empty(t, s.LongTerm())
}

func TestAddLongTerm(t *testing.T) {
	s := New()

	s.AddLongTerm("Learn sailing")
	s.AddLongTerm("  ")
	s.AddLongTerm("Read more")

	assert.Equal(t, []string{"Learn sailing", "Read more"}, s.LongTerm())
}

func TestDeleteLongTerm(t *testing.T) {
	s := New()
	s.AddLongTerm("Learn sailing")
	s.AddLongTerm("Read more")

	s.DeleteLongTerm(0)
	assert.Equal(t, []string{"Read more"}, s.LongTerm())

	s.DeleteLongTerm(5)
	s.DeleteLongTerm(-1)
	assert.Equal(t, []string{"Read more"}, s.LongTerm())
}

func TestMoveLongTermToDaily(t *testing.T) {
	s := New()
	s.AddLongTerm("Learn sailing")

	s.MoveLongTermToDaily(mar10, 0)

	assert.Empty(t, s.LongTerm())
	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Learn sailing", tasks[0].Text)
	assert.False(t, tasks[0].Done)
}

func TestMoveLongTermToDailyNoops(t *testing.T) {
	s := New()
	s.AddLongTerm("Learn sailing")

	s.MoveLongTermToDaily(domain.Date{}, 0) // no date selected
	s.MoveLongTermToDaily(mar10, 3)         // index out of range

	assert.Equal(t, []string{"Learn sailing"}, s.LongTerm())
	assert.Equal(t, 0, s.CountForDate(mar10))
}

func TestMovesAppendToDestination(t *testing.T) {
	s := New()
	s.AddLongTerm("First")
	s.AddDaily(mar10, "Existing")

	s.MoveLongTermToDaily(mar10, 0)

	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[1].Text)

	s.MoveDailyToLongTerm(mar10, 0)
	assert.Equal(t, []string{"Existing"}, s.LongTerm())
}

func TestDates(t *testing.T) {
	s := New()
	s.AddDaily(mar11, "Later")
	s.AddDaily(mar10, "Earlier")
	s.AddDaily(domain.NewDate(2023, time.December, 31), "Earliest")

	dates := s.Dates()
	require.Len(t, dates, 3)
	assert.Equal(t, "2023-12-31", dates[0].String())
	assert.Equal(t, "2024-03-10", dates[1].String())
	assert.Equal(t, "2024-03-11", dates[2].String())
}

func TestTasksOnReturnsCopy(t *testing.T) {
	s := New()
	s.AddDaily(mar10, "Buy milk")

	tasks := s.TasksOn(mar10)
	tasks[0].Done = true

	assert.False(t, s.TasksOn(mar10)[0].Done)
}

func TestScenarioAddAddToggle(t *testing.T) {
	s := New()

	s.AddDaily(mar10, "Buy milk")
	s.AddDaily(mar10, "Call bank")
	s.ToggleDaily(mar10, 0)

	tasks := s.TasksOn(mar10)
	require.Len(t, tasks, 2)
	assert.Equal(t, domain.DailyTask{Text: "Buy milk", Done: true}, tasks[0])
	assert.Equal(t, domain.DailyTask{Text: "Call bank", Done: false}, tasks[1])
	assert.Equal(t, 2, s.CountForDate(mar10))
}
