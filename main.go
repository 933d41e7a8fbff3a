package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Devansh-sys/todo-list-cts/pkg/cli"
	"github.com/Devansh-sys/todo-list-cts/pkg/config"
	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/storage"
	"github.com/Devansh-sys/todo-list-cts/pkg/ui"
	"github.com/Devansh-sys/todo-list-cts/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	cfg, err := config.Load(args.ConfigPath, args.DatabasePath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	db, err := storage.ConnectDB(cfg.Database)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewStore(db)
	sess := session.New(store)

	// CLI commands run and exit without starting the UI
	if cli.HandleCommands(sess, store, args) {
		return
	}

	p := tea.NewProgram(ui.NewModel(sess, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
