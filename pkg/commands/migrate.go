package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/storage"
)

// HandleMigrateDates processes the -migrate-dates command: a one-off
// maintenance pass that rewrites every stored task's date to the target
// day. It works on the raw payload, below the session's editing rules,
// so completed tasks are moved too.
func HandleMigrateDates(store *storage.Store, dateStr string) {
	target := dateStr
	if target == "today" {
		target = time.Now().Format(session.DateKeyLayout)
	}
	if _, err := time.Parse(session.DateKeyLayout, target); err != nil {
		fmt.Printf("Error parsing date: %v\n", err)
		os.Exit(1)
	}

	tasks, nextID := store.Load()
	if len(tasks) == 0 {
		fmt.Println("No tasks to migrate")
		return
	}

	for i := range tasks {
		fmt.Printf("Moving %q from %s to %s\n", tasks[i].Title, tasks[i].Date, target)
		tasks[i].Date = target
	}

	if err := store.Save(tasks, nextID); err != nil {
		fmt.Printf("Error saving migrated tasks: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully moved %d task(s) to %s\n", len(tasks), target)
}
