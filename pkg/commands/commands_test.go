package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/storage"
	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

func newTestSession(t *testing.T) (*session.Session, *storage.Store) {
	t.Helper()

	db, err := storage.ConnectDB(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.EnsureSchema(db))

	store := storage.NewStore(db)
	return session.New(store), store
}

func TestAddTaskParsesInlineMarkers(t *testing.T) {
	sess, _ := newTestSession(t)

	HandleAddTask(sess, "Pay bills #work !high", "2026-02-25")

	all := sess.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Pay bills", all[0].Title)
	assert.Equal(t, "work", all[0].Tag)
	assert.Equal(t, "high", all[0].Priority)
	assert.Equal(t, "2026-02-25", all[0].Date)
	assert.Equal(t, task.SectionToDo, all[0].Section)
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	sess, _ := newTestSession(t)
	_, err := sess.Create(session.Fields{Title: "Pay bills", Tag: "work", Priority: "high", Date: "2026-02-25"})
	require.NoError(t, err)
	_, err = sess.Create(session.Fields{Title: "Run", Tag: "health", Section: task.SectionDone, Date: "2026-02-26"})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "tasks.json")
	HandleExportCommand(sess, file, "json")

	other, _ := newTestSession(t)
	HandleImportCommand(other, file)

	all := other.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Pay bills", all[0].Title)
	assert.Equal(t, "work", all[0].Tag)
	assert.Equal(t, "2026-02-25", all[0].Date)
	assert.Equal(t, task.SectionDone, all[1].Section)
	assert.Equal(t, "2026-02-26", all[1].Date)
}

func TestExportTxtFormat(t *testing.T) {
	sess, _ := newTestSession(t)
	_, err := sess.Create(session.Fields{Title: "Pay bills", StartTime: "09:00", EndTime: "09:30", Date: "2026-02-25"})
	require.NoError(t, err)
	_, err = sess.Create(session.Fields{Title: "Run", Section: task.SectionDone, Date: "2026-02-25"})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "tasks.txt")
	HandleExportCommand(sess, file, "txt")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "2026-02-25:")
	assert.Contains(t, content, "- [ ] Pay bills (9am-9:30am)")
	assert.Contains(t, content, "- [x] Run")
}

func TestImportTxt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tasks.txt")
	content := "2026-02-25:\n- [ ] Pay bills\n- [x] Run\n\n2026-02-26:\n- [ ] Read\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	sess, _ := newTestSession(t)
	HandleImportCommand(sess, file)

	all := sess.All()
	require.Len(t, all, 3)
	assert.Equal(t, task.SectionToDo, all[0].Section)
	assert.Equal(t, task.SectionDone, all[1].Section)
	assert.Equal(t, "2026-02-26", all[2].Date)
}

func TestMigrateDatesRewritesEveryTask(t *testing.T) {
	_, store := newTestSession(t)

	require.NoError(t, store.Save([]task.Task{
		{ID: 0, Title: "a", Section: task.SectionToDo, Date: "2025-12-01"},
		{ID: 1, Title: "b", Section: task.SectionDone, Date: "2026-01-15"},
	}, 2))

	HandleMigrateDates(store, "2026-02-25")

	tasks, nextID := store.Load()
	require.Len(t, tasks, 2)
	assert.Equal(t, "2026-02-25", tasks[0].Date)
	assert.Equal(t, "2026-02-25", tasks[1].Date)
	assert.Equal(t, 2, nextID)

	// The migration moves completed tasks too, unlike the editing path
	assert.Equal(t, task.SectionDone, tasks[1].Section)
}
