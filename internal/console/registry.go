package console

import (
	"fmt"
	"strings"

	"chess/internal/game"
	"chess/internal/storage"
)

// Status is a command's result code: 0 success, -1 failure. StatusExit
// is the distinguished terminate signal that stops the command loop.
type Status int

const (
	StatusOK    Status = 0
	StatusError Status = -1
	StatusExit  Status = 1
)

// Command binds a name to its handler plus the metadata the dispatcher
// and the help command need. ArgCount is the required token count of
// the full line, including the command word itself.
type Command struct {
	Name     string
	ArgCount int
	Help     string
	Detail   string
	Handler  func(args []string) (Status, error)
}

// Registry owns the current game and dispatches command lines against
// it. All errors surface here as diagnostics; the command loop keeps
// running on failure.
type Registry struct {
	view     *Console
	store    *storage.Store // nil disables save/load
	game     *game.Game
	commands map[string]*Command
	order    []string
}

func NewRegistry(view *Console, store *storage.Store) *Registry {
	r := &Registry{
		view:     view,
		store:    store,
		game:     game.New(),
		commands: make(map[string]*Command),
	}
	r.registerCommands()
	return r
}

func (r *Registry) register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
}

// Game exposes the current game for rendering and persistence callers.
func (r *Registry) Game() *game.Game {
	return r.game
}

// Dispatch parses one command line, validates the command name and
// token count, and invokes the handler with the remaining tokens.
func (r *Registry) Dispatch(line string) Status {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		r.view.ShowError(ErrEmptyInput)
		return StatusError
	}

	cmd, ok := r.commands[tokens[0]]
	if !ok {
		r.view.ShowError(fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[0]))
		return StatusError
	}

	if len(tokens) != cmd.ArgCount {
		r.view.ShowError(fmt.Errorf("%w: %q takes %d argument(s), got %d",
			ErrArityMismatch, cmd.Name, cmd.ArgCount-1, len(tokens)-1))
		return StatusError
	}

	status, err := cmd.Handler(tokens[1:])
	if err != nil {
		r.view.ShowError(err)
		return StatusError
	}
	return status
}

// confirm asks a y/n question on the view's line source. Any answer
// other than "y" or "n" is an error and must leave state untouched.
func (r *Registry) confirm(question string) (bool, error) {
	r.view.ShowPrompt(question + " (y / n):\n>")
	line, err := r.view.ReadLine()
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(line) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnrecognizedConfirmation, strings.TrimSpace(line))
	}
}
