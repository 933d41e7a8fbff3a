package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

// HandleImportCommand processes -import commands. JSON files are expected
// to hold an exported task array; anything else is parsed as the txt
// format written by -export (date header lines followed by "- [ ]" items).
// Imported tasks get fresh ids from the session counter.
func HandleImportCommand(sess *session.Session, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var added int
	if strings.HasSuffix(filename, ".json") {
		added = importJSON(sess, data)
	} else {
		added = importTxt(sess, data)
	}

	fmt.Printf("Successfully imported %d task(s) from %s\n", added, filename)
}

func importJSON(sess *session.Session, data []byte) int {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	added := 0
	for _, t := range tasks {
		_, err := sess.Create(session.Fields{
			Title:     t.Title,
			Tag:       t.Tag,
			Priority:  t.Priority,
			Section:   t.Section,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
			Date:      t.Date,
		})
		if err != nil {
			fmt.Printf("Error adding task %q: %v\n", t.Title, err)
			continue
		}
		added++
	}
	return added
}

var dateHeaderRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}):?$`)

func importTxt(sess *session.Session, data []byte) int {
	var currentDate string
	added := 0

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := dateHeaderRe.FindStringSubmatch(line); m != nil {
			currentDate = m[1]
			continue
		}

		if !strings.HasPrefix(line, "- ") {
			continue
		}
		text := strings.TrimPrefix(line, "- ")

		section := task.SectionToDo
		if strings.HasPrefix(text, "[x]") {
			section = task.SectionDone
			text = strings.TrimSpace(strings.TrimPrefix(text, "[x]"))
		} else if strings.HasPrefix(text, "[ ]") {
			text = strings.TrimSpace(strings.TrimPrefix(text, "[ ]"))
		}
		if text == "" {
			continue
		}

		_, err := sess.Create(session.Fields{
			Title:   text,
			Section: section,
			Date:    currentDate,
		})
		if err != nil {
			fmt.Printf("Error adding task %q: %v\n", text, err)
			continue
		}
		added++
	}
	return added
}
