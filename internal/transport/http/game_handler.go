package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chess/internal/core"
	"chess/internal/game"
	"chess/internal/notation"
	"chess/internal/service"
	"chess/internal/storage"
)

// CreateGame starts a game in the standard layout with empty history.
func (h *Handler) CreateGame(c *fiber.Ctx) error {
	gameID, g := h.svc.CreateGame()
	return c.Status(fiber.StatusCreated).JSON(buildGameResponse(gameID, g))
}

// GetGame returns the game's board and move history.
func (h *Handler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.Get(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// GetBoard returns the ASCII rendering of the board.
func (h *Handler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.Get(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	return c.JSON(BoardResponse{Board: g.Board().ASCII()})
}

// MakeMove relocates a piece. No legality checks beyond source
// occupancy and bounds, matching the console surface.
func (h *Handler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	req := c.Locals("validatedBody").(*MoveRequest)

	_, err := h.svc.Move(gameID, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  core.ErrGameNotFound,
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid move",
				Code:    core.ErrInvalidMove,
				Details: err.Error(),
			})
		}
	}

	g, _ := h.svc.Get(gameID)
	return c.JSON(buildGameResponse(gameID, g))
}

// UndoMove reverses the most recent move.
func (h *Handler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	_, err := h.svc.Undo(gameID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  core.ErrGameNotFound,
			})
		case errors.Is(err, game.ErrEmptyHistory):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error: "no moves to undo",
				Code:  core.ErrEmptyHistory,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "undo failed",
				Code:    core.ErrInternalError,
				Details: err.Error(),
			})
		}
	}

	g, _ := h.svc.Get(gameID)
	return c.JSON(buildGameResponse(gameID, g))
}

// DeleteGame removes a game from memory.
func (h *Handler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.Delete(gameID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SaveGame snapshots the game into a slot, overwriting any prior save.
func (h *Handler) SaveGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	req := c.Locals("validatedBody").(*SaveRequest)

	slot := req.Slot
	if slot == "" {
		slot = storage.DefaultSlot
	}

	if err := h.svc.Save(gameID, slot); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  core.ErrGameNotFound,
			})
		case errors.Is(err, service.ErrStorageDisabled):
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "storage is disabled",
				Code:  core.ErrStorageDisabled,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "save failed",
				Code:    core.ErrInternalError,
				Details: err.Error(),
			})
		}
	}

	return c.JSON(SaveResponse{Slot: slot})
}

// LoadGame reconstructs a saved game under a fresh game ID.
func (h *Handler) LoadGame(c *fiber.Ctx) error {
	req := c.Locals("validatedBody").(*LoadRequest)

	slot := req.Slot
	if slot == "" {
		slot = storage.DefaultSlot
	}

	gameID, g, err := h.svc.Load(slot)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNoSave):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "no saved game",
				Code:  core.ErrSaveNotFound,
			})
		case errors.Is(err, service.ErrStorageDisabled):
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "storage is disabled",
				Code:  core.ErrStorageDisabled,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "load failed",
				Code:    core.ErrInternalError,
				Details: err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(buildGameResponse(gameID, g))
}

func buildGameResponse(gameID string, g *game.Game) GameResponse {
	history := g.History()
	moves := make([]MoveInfo, 0, len(history))
	for _, m := range history {
		fromText, _ := notation.Format(m.From)
		toText, _ := notation.Format(m.To)
		info := MoveInfo{From: fromText, To: toText}
		if m.Captured != core.NoPiece {
			if p, ok := g.Board().Get(m.Captured); ok {
				info.Captured = p.Code()
			}
		}
		moves = append(moves, info)
	}

	return GameResponse{
		GameID: gameID,
		Moves:  moves,
		Board:  g.Board().ASCII(),
	}
}
