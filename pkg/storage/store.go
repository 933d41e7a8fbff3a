package storage

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Devansh-sys/todo-list-cts/pkg/task"
	"github.com/Devansh-sys/todo-list-cts/pkg/utils"
)

// Storage keys, one per payload. The task list and the id counter are
// persisted separately so the counter survives even if the list is cleared.
const (
	tasksKey   = "tasklist.tasks"
	counterKey = "tasklist.counter"
)

// Store persists the task list and id counter as key-value payloads
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open database connection
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load reads the persisted task list and next id. It never fails hard:
// a missing or unparseable payload is logged and treated as empty state,
// so a corrupt store degrades to a fresh session instead of a crash.
func (s *Store) Load() ([]task.Task, int) {
	var tasks []task.Task

	raw, ok := s.get(tasksKey)
	if ok {
		if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
			utils.Log("Failed to parse stored tasks, starting empty: %v", err)
			return nil, 0
		}
	}

	// Legacy records may predate the date field; default them to today so
	// they stay reachable from the day view.
	todayKey := time.Now().Format("2006-01-02")
	for i := range tasks {
		if tasks[i].Date == "" {
			tasks[i].Date = todayKey
		}
	}

	nextID := 0
	if rawCounter, ok := s.get(counterKey); ok {
		if n, err := strconv.Atoi(rawCounter); err == nil {
			nextID = n
		}
	} else if len(tasks) > 0 {
		// No persisted counter: recover one that cannot collide
		for _, t := range tasks {
			if t.ID >= nextID {
				nextID = t.ID + 1
			}
		}
	}

	utils.Log("Loaded %d tasks, next id %d", len(tasks), nextID)
	return tasks, nextID
}

// Save writes the task list and next id. Both payloads are written in one
// transaction so a reload never sees a list without its counter.
func (s *Store) Save(tasks []task.Task, nextID int) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.Exec(upsert, tasksKey, string(payload)); err != nil {
		return err
	}
	if _, err := tx.Exec(upsert, counterKey, strconv.Itoa(nextID)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		utils.Log("Failed to read %s: %v", key, err)
		return "", false
	}
	return value, true
}
