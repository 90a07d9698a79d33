package console

import (
	"fmt"

	"chess/internal/core"
	"chess/internal/game"
	"chess/internal/notation"
	"chess/internal/storage"
)

func (r *Registry) registerCommands() {
	r.register(&Command{
		Name:     "help",
		ArgCount: 2,
		Help:     "Provide usage information for commands. 'help [command]' for specific command details.",
		Detail: "Provide usage information for commands. 'help [command]' for details on a command; " +
			"'help all' for an overview of all available commands.",
		Handler: r.cmdHelp,
	})

	r.register(&Command{
		Name:     "board",
		ArgCount: 1,
		Help:     "Prints the board to the console.",
		Detail:   "Prints the board to the console in a visual format.",
		Handler:  r.cmdBoard,
	})

	r.register(&Command{
		Name:     "move",
		ArgCount: 3,
		Help:     "Move a piece.",
		Detail: "Attempts to move a piece from the coordinates of the first argument to that of the second argument.\n" +
			"Usage: 'move a7 a5'",
		Handler: r.cmdMove,
	})

	r.register(&Command{
		Name:     "newgame",
		ArgCount: 1,
		Help:     "Reset the board.",
		Detail: "Starts a new game of chess, with all pieces set back to their initial positions." +
			" The status of the ongoing game is also cleared.",
		Handler: r.cmdNewGame,
	})

	r.register(&Command{
		Name:     "save",
		ArgCount: 1,
		Help:     "Saves the game.",
		Detail: "Saves the game to the save slot.\nOnly one save slot is available, and " +
			"any existing saved data is overwritten by this command.",
		Handler: r.cmdSave,
	})

	r.register(&Command{
		Name:     "load",
		ArgCount: 1,
		Help:     "Loads a game.",
		Detail: "Loads the existing save slot data as a game.\nOnly one save slot is available, and " +
			"any ongoing game will be overwritten.",
		Handler: r.cmdLoad,
	})

	r.register(&Command{
		Name:     "undo",
		ArgCount: 1,
		Help:     "Undoes the last move.",
		Detail:   "Undoes the most recently played move, restoring the previous game state.",
		Handler:  r.cmdUndo,
	})

	r.register(&Command{
		Name:     "exit",
		ArgCount: 1,
		Help:     "Exit the program.",
		Detail:   "Exits the program without saving.",
		Handler:  r.cmdExit,
	})
}

func (r *Registry) cmdHelp(args []string) (Status, error) {
	if args[0] == "all" {
		for _, name := range r.order {
			cmd := r.commands[name]
			r.view.ShowMessage(fmt.Sprintf("'%s' -> %s", cmd.Name, cmd.Help))
		}
		return StatusOK, nil
	}

	cmd, ok := r.commands[args[0]]
	if !ok {
		return StatusError, fmt.Errorf("%w: %q", ErrUnknownTopic, args[0])
	}
	r.view.ShowMessage(fmt.Sprintf("'%s' -> %s", cmd.Name, cmd.Detail))
	return StatusOK, nil
}

func (r *Registry) cmdBoard(args []string) (Status, error) {
	r.view.DisplayBoard(r.game.Board())
	return StatusOK, nil
}

func (r *Registry) cmdMove(args []string) (Status, error) {
	from, err := notation.Parse(args[0])
	if err != nil {
		return StatusError, fmt.Errorf("%w (enter 'help move' for proper usage)", err)
	}
	to, err := notation.Parse(args[1])
	if err != nil {
		return StatusError, fmt.Errorf("%w (enter 'help move' for proper usage)", err)
	}

	// Checked here so the diagnostic can name the tile; Apply checks
	// again before mutating.
	if r.game.Board().PieceAt(from) == core.NoPiece {
		return StatusError, fmt.Errorf("%w: tile %q", game.ErrEmptySource, args[0])
	}

	m, err := r.game.Apply(from, to)
	if err != nil {
		return StatusError, err
	}

	moved, _ := r.game.Board().Get(r.game.Board().PieceAt(m.To))
	fromText, _ := notation.Format(m.From)
	toText, _ := notation.Format(m.To)
	r.view.ShowMessage(fmt.Sprintf("Piece %s moved from %s to %s", moved.Code(), fromText, toText))
	return StatusOK, nil
}

func (r *Registry) cmdNewGame(args []string) (Status, error) {
	confirmed, err := r.confirm("Start a new game? Current game will not be saved.")
	if err != nil {
		return StatusError, err
	}
	if confirmed {
		r.game = game.New()
	}
	return StatusOK, nil
}

func (r *Registry) cmdSave(args []string) (Status, error) {
	confirmed, err := r.confirm("Save? Existing save data will be overwritten.")
	if err != nil {
		return StatusError, err
	}
	if !confirmed {
		return StatusOK, nil
	}

	if r.store == nil {
		return StatusError, ErrStorageDisabled
	}
	if err := r.store.SaveGame(storage.DefaultSlot, r.game); err != nil {
		return StatusError, fmt.Errorf("save failed: %w", err)
	}
	r.view.ShowMessage("Save successful")
	return StatusOK, nil
}

func (r *Registry) cmdLoad(args []string) (Status, error) {
	confirmed, err := r.confirm("Load? Ongoing game will be overwritten.")
	if err != nil {
		return StatusError, err
	}
	if !confirmed {
		return StatusOK, nil
	}

	if r.store == nil {
		return StatusError, ErrStorageDisabled
	}
	g, err := r.store.LoadGame(storage.DefaultSlot)
	if err != nil {
		return StatusError, fmt.Errorf("load failed: %w", err)
	}
	r.game = g
	r.view.ShowMessage("Load successful")
	return StatusOK, nil
}

func (r *Registry) cmdUndo(args []string) (Status, error) {
	m, err := r.game.Undo()
	if err != nil {
		return StatusError, err
	}

	fromText, _ := notation.Format(m.From)
	toText, _ := notation.Format(m.To)
	r.view.ShowMessage(fmt.Sprintf("'move %s %s' undone", fromText, toText))
	return StatusOK, nil
}

func (r *Registry) cmdExit(args []string) (Status, error) {
	confirmed, err := r.confirm("Exit? Current game will not be saved.")
	if err != nil {
		return StatusError, err
	}
	if confirmed {
		return StatusExit, nil
	}
	return StatusOK, nil
}
