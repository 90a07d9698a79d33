package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"chess/internal/console"
	"chess/internal/storage"
)

// readlineSource adapts a readline instance to the console's line
// source so confirmations share the same history-aware input.
type readlineSource struct {
	rl *readline.Instance
}

func (r readlineSource) ReadLine() (string, error) {
	return r.rl.Readline()
}

func main() {
	var (
		storagePath = flag.String("storage-path", "chess.db", "Path to the SQLite save file (disables save/load if empty)")
		noColor     = flag.Bool("no-color", false, "Disable board colors")
	)
	flag.Parse()

	var store *storage.Store
	if *storagePath != "" {
		var err error
		store, err = storage.NewStore(*storagePath)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize storage schema: %v", err)
		}
		defer store.Close()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".chess_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	view := console.New(readlineSource{rl: rl}, os.Stdout)
	if !*noColor && term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(console.ThemeBrown)
	}

	registry := console.NewRegistry(view, store)

	view.ShowMessage("Welcome to Chess!")
	view.ShowMessage("Enter a command ('help all' for available commands)")
	view.DisplayBoard(registry.Game().Board())

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		if registry.Dispatch(line) == console.StatusExit {
			break
		}
	}
}
