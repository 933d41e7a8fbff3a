package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

// HandleExportCommand processes -export commands
func HandleExportCommand(sess *session.Session, filename, exportType string) {
	tasks := sess.All()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling tasks to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		var lastDate string
		for _, t := range tasks {
			if t.Date != lastDate {
				lines = append(lines, fmt.Sprintf("\n%s:", t.Date))
				lastDate = t.Date
			}

			check := " "
			if t.Section == task.SectionDone {
				check = "x"
			}
			line := fmt.Sprintf("- [%s] %s", check, t.Title)
			if window := task.FormatWindow(t.StartTime, t.EndTime); window != "" {
				line += " (" + window + ")"
			}
			lines = append(lines, line)
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d task(s) to %s\n", len(tasks), filename)
}
