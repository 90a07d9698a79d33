// Package service manages games for the HTTP transport: a registry of
// live games keyed by UUID, with optional SQLite persistence behind the
// save/load operations. The console surface owns its game directly and
// does not go through here.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"chess/internal/game"
	"chess/internal/notation"
	"chess/internal/storage"
)

var (
	ErrNotFound        = errors.New("game not found")
	ErrStorageDisabled = errors.New("storage is disabled")
)

// Service is a state manager for games with optional persistence.
// Handlers run concurrently, so every game mutation happens under the
// write lock.
type Service struct {
	mu    sync.RWMutex
	games map[string]*game.Game
	store *storage.Store // nil if persistence disabled
}

func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		store: store,
	}
}

// CreateGame registers a fresh game in the standard starting layout
// and returns its ID.
func (s *Service) CreateGame() (string, *game.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	g := game.New()
	s.games[id] = g
	return id, g
}

// newID returns a UUID not already in use. Callers hold the lock.
func (s *Service) newID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// Get retrieves a game by ID.
func (s *Service) Get(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	return g, nil
}

// Move parses both coordinates and applies the move to the game.
func (s *Service) Move(gameID, fromText, toText string) (game.Move, error) {
	from, err := notation.Parse(fromText)
	if err != nil {
		return game.Move{}, err
	}
	to, err := notation.Parse(toText)
	if err != nil {
		return game.Move{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.Move{}, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	return g.Apply(from, to)
}

// Undo reverses the game's most recent move.
func (s *Service) Undo(gameID string) (game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.Move{}, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	return g.Undo()
}

// Delete removes a game from memory.
func (s *Service) Delete(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	delete(s.games, gameID)
	return nil
}

// Save snapshots a game into the named slot.
func (s *Service) Save(gameID, slot string) error {
	if s.store == nil {
		return ErrStorageDisabled
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	return s.store.SaveGame(slot, g)
}

// Load reconstructs the game saved in the slot and registers it under
// a fresh ID.
func (s *Service) Load(slot string) (string, *game.Game, error) {
	if s.store == nil {
		return "", nil, ErrStorageDisabled
	}

	g, err := s.store.LoadGame(slot)
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	s.games[id] = g
	return id, g, nil
}

// StorageStatus reports the persistence component state for health
// checks.
func (s *Service) StorageStatus() string {
	if s.store == nil {
		return "disabled"
	}
	return "ok"
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
