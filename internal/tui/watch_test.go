package tui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
	"chronosdeck/internal/storage"
)

func doc(t *testing.T, id string, v interface{}) storage.Document {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return storage.Document{ID: id, Data: data}
}

func TestApplySortsTasksOpenFirst(t *testing.T) {
	m := &WatchModel{}

	err := m.apply(paths.KindTasks, []storage.Document{
		doc(t, "1", model.NewTask("zebra", "Math", "")),
		doc(t, "2", &model.Task{TaskName: "done one", IsComplete: true}),
		doc(t, "3", model.NewTask("apple", "Art", "")),
	})
	require.NoError(t, err)

	require.Len(t, m.tasks, 3)
	assert.Equal(t, "apple", m.tasks[0].TaskName)
	assert.Equal(t, "zebra", m.tasks[1].TaskName)
	assert.Equal(t, "done one", m.tasks[2].TaskName)
}

func TestApplyReplacesSnapshot(t *testing.T) {
	m := &WatchModel{}

	require.NoError(t, m.apply(paths.KindSubjects, []storage.Document{
		doc(t, "1", model.NewSubject("Math", "")),
		doc(t, "2", model.NewSubject("Art", "")),
	}))
	require.Len(t, m.subjects, 2)

	// The next snapshot fully replaces the previous one.
	require.NoError(t, m.apply(paths.KindSubjects, []storage.Document{
		doc(t, "2", model.NewSubject("Art", "")),
	}))
	require.Len(t, m.subjects, 1)
	assert.Equal(t, "Art", m.subjects[0].Name)
}

func TestViewRendersSections(t *testing.T) {
	m := &WatchModel{}
	require.NoError(t, m.apply(paths.KindTasks, []storage.Document{
		doc(t, "1", model.NewTask("Essay", "English", "2026-09-01")),
	}))

	view := m.View()
	assert.Contains(t, view, "Essay")
	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "q: quit")
}
