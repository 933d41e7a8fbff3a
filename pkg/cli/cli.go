package cli

import (
	"flag"

	"github.com/Devansh-sys/todo-list-cts/pkg/commands"
	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/storage"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath   string
	DatabasePath string
	Verbose      bool

	// Task operations
	AddTask  string
	DateFlag string

	// Maintenance operations
	MigrateDates string

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&args.DatabasePath, "database", "", "Path to database file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Task operations
	flag.StringVar(&args.AddTask, "add", "", "Add a new task")
	flag.StringVar(&args.DateFlag, "date", "", "Date for task (YYYY-MM-DD format)")

	// Maintenance operations
	flag.StringVar(&args.MigrateDates, "migrate-dates", "", "Rewrite every stored task's date to the given day (YYYY-MM-DD or 'today')")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import tasks from file")
	flag.StringVar(&args.ExportFile, "export", "", "Export tasks to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(sess *session.Session, store *storage.Store, args *Args) bool {
	if args.AddTask != "" {
		commands.HandleAddTask(sess, args.AddTask, args.DateFlag)
		return true
	}

	if args.MigrateDates != "" {
		commands.HandleMigrateDates(store, args.MigrateDates)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(sess, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(sess, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
