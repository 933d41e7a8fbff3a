package commands

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
)

var (
	tagRe  = regexp.MustCompile(`#(\w[\w/-]*)`)
	prioRe = regexp.MustCompile(`!(\w[\w-]*)`)
)

// HandleAddTask processes the -add command. The task text may carry an
// inline #tag and !priority, e.g. "Pay bills #work !high".
func HandleAddTask(sess *session.Session, taskText string, dateStr string) {
	if dateStr != "" {
		if _, err := time.Parse(session.DateKeyLayout, dateStr); err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
	}

	tag := firstMatch(tagRe, taskText)
	prio := firstMatch(prioRe, taskText)
	title := stripMarkers(taskText)

	_, err := sess.Create(session.Fields{
		Title:    title,
		Tag:      tag,
		Priority: prio,
		Date:     dateStr,
	})
	if err != nil {
		fmt.Printf("Error adding task: %v\n", err)
		os.Exit(1)
	}
}

// firstMatch returns the first capture of re in text, or ""
func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// stripMarkers removes #tag and !priority tokens for a clean title
func stripMarkers(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	text = prioRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
