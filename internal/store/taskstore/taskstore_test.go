package taskstore

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/locale"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/prompt"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func newTestStore(t *testing.T) (*Store, *prompt.Queue) {
	t.Helper()
	q := &prompt.Queue{}
	return New(q, WithIDFunc(sequentialIDs())), q
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestStore_AddTask(t *testing.T) {
	s, q := newTestStore(t)

	task, err := s.AddTask("Buy milk")
	require.NoError(t, err)
	assert.Equal(t, model.Task{ID: "1", Title: "Buy milk", Done: false}, task)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, q.Len())

	_, err = s.AddTask("Walk dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk", "Walk dog"}, titles(s.Tasks()))
}

func TestStore_AddTask_Duplicate(t *testing.T) {
	s, q := newTestStore(t)
	_, err := s.AddTask("Buy milk")
	require.NoError(t, err)
	before := s.Tasks()

	_, err = s.AddTask("Buy milk")
	assert.ErrorIs(t, err, ErrDuplicateTitle)
	assert.Equal(t, before, s.Tasks())

	require.Equal(t, 1, q.Len())
	d := q.Current()
	assert.Equal(t, "Task already registered", d.Prompt.Title)
	require.Len(t, d.Prompt.Choices, 1)
	assert.Equal(t, "Ok", d.Prompt.Choices[0].Label)
	assert.Equal(t, prompt.StyleCancel, d.Prompt.Choices[0].Style)
}

func TestStore_AddTask_CaseSensitive(t *testing.T) {
	s, q := newTestStore(t)
	_, err := s.AddTask("Buy milk")
	require.NoError(t, err)

	_, err = s.AddTask("buy milk")
	require.NoError(t, err)
	_, err = s.AddTask("Buy milk ")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, q.Len())
}

func TestStore_AddTask_Empty(t *testing.T) {
	s, q := newTestStore(t)
	_, err := s.AddTask("")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, q.Len())
}

func TestStore_AddTask_ChecksCurrentTitlesOnly(t *testing.T) {
	s, q := newTestStore(t)
	task, err := s.AddTask("Buy milk")
	require.NoError(t, err)

	s.RemoveTask(task.ID)
	require.True(t, q.Current().Accept())
	require.Equal(t, 0, s.Len())

	_, err = s.AddTask("Buy milk")
	assert.NoError(t, err)
}

func TestStore_AddTask_DefaultIDsAreUnique(t *testing.T) {
	s := New(&prompt.Queue{})
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		task, err := s.AddTask("task " + strconv.Itoa(i))
		require.NoError(t, err)
		require.NotEmpty(t, task.ID)
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestStore_ToggleTaskDone(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.AddTask("a")
	b, _ := s.AddTask("b")

	s.ToggleTaskDone(a.ID)
	got, ok := s.Task(a.ID)
	require.True(t, ok)
	assert.True(t, got.Done)
	other, _ := s.Task(b.ID)
	assert.False(t, other.Done)

	s.ToggleTaskDone(a.ID)
	got, _ = s.Task(a.ID)
	assert.False(t, got.Done)

	before := s.Tasks()
	s.ToggleTaskDone("missing")
	assert.Equal(t, before, s.Tasks())
}

func TestStore_RemoveTask(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
		want    []string
	}{
		{name: "confirmed", confirm: true, want: []string{"a", "c"}},
		{name: "declined", confirm: false, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, q := newTestStore(t)
			s.AddTask("a")
			b, _ := s.AddTask("b")
			s.AddTask("c")

			s.RemoveTask(b.ID)
			assert.Equal(t, 3, s.Len(), "removal must wait for confirmation")

			d := q.Current()
			require.NotNil(t, d)
			assert.Equal(t, "Remove item", d.Prompt.Title)
			require.Len(t, d.Prompt.Choices, 2)
			assert.Equal(t, "No", d.Prompt.Choices[0].Label)
			assert.Equal(t, prompt.StyleCancel, d.Prompt.Choices[0].Style)
			assert.Equal(t, "Yes", d.Prompt.Choices[1].Label)
			assert.Equal(t, prompt.StyleDestructive, d.Prompt.Choices[1].Style)

			if tt.confirm {
				require.True(t, d.Accept())
			} else {
				require.True(t, d.Dismiss())
			}
			assert.Equal(t, tt.want, titles(s.Tasks()))
			assert.Nil(t, q.Current())
		})
	}
}

func TestStore_RemoveTask_StaleConfirmation(t *testing.T) {
	s, q := newTestStore(t)
	a, _ := s.AddTask("a")
	s.AddTask("b")

	s.RemoveTask(a.ID)
	s.RemoveTask(a.ID)

	require.True(t, q.Current().Accept())
	require.True(t, q.Current().Accept())
	assert.Equal(t, []string{"b"}, titles(s.Tasks()))
}

func TestStore_RenameTask(t *testing.T) {
	s, q := newTestStore(t)
	a, _ := s.AddTask("a")
	s.AddTask("b")

	s.RenameTask(a.ID, "b")
	assert.Equal(t, []string{"b", "b"}, titles(s.Tasks()))
	assert.Equal(t, 0, q.Len(), "rename must not raise a duplicate notice")

	s.RenameTask(a.ID, "")
	got, _ := s.Task(a.ID)
	assert.Equal(t, "", got.Title)
	assert.Equal(t, a.ID, got.ID)

	before := s.Tasks()
	s.RenameTask("missing", "x")
	assert.Equal(t, before, s.Tasks())
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTask("a")

	tasks := s.Tasks()
	tasks[0].Title = "changed"
	assert.Equal(t, []string{"a"}, titles(s.Tasks()))
}

func TestStore_Stats(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.AddTask("a")
	s.AddTask("b")
	s.AddTask("c")
	s.ToggleTaskDone(a.ID)

	done, pending := s.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestStore_WithMessages(t *testing.T) {
	q := &prompt.Queue{}
	s := New(q, WithMessages(locale.For("pt-BR")))
	a, _ := s.AddTask("a")

	s.RemoveTask(a.ID)
	d := q.Current()
	assert.Equal(t, "Remover item", d.Prompt.Title)
	assert.Equal(t, "Não", d.Prompt.Choices[0].Label)
	assert.Equal(t, "Sim", d.Prompt.Choices[1].Label)
}

func TestStore_ExampleSequence(t *testing.T) {
	s, q := newTestStore(t)
	_, err := s.AddTask("Buy milk")
	require.NoError(t, err)

	_, err = s.AddTask("Buy milk")
	assert.ErrorIs(t, err, ErrDuplicateTitle)
	assert.Equal(t, 1, s.Len())
	require.Equal(t, 1, q.Len())
	require.True(t, q.Current().Select())

	walk, err := s.AddTask("Walk dog")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.False(t, walk.Done)

	s.ToggleTaskDone("1")
	milk, _ := s.Task("1")
	assert.True(t, milk.Done)

	s.RemoveTask("1")
	require.True(t, q.Current().Accept())
	assert.Equal(t, []model.Task{{ID: "2", Title: "Walk dog", Done: false}}, s.Tasks())
}
