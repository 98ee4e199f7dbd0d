package service

import (
	"fmt"

	"boardsync/internal/model"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameService is the facade the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

// CreateGame opens a new session, optionally seeded from an encoded board
// snapshot, and returns its ID.
func (gs *GameService) CreateGame(encoded string) (string, error) {
	gameID := uuid.New().String()

	var err error
	if encoded != "" {
		err = gs.gameManager.CreateGameFromEncoding(gameID, encoded)
	} else {
		err = gs.gameManager.CreateGame(gameID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) PollMatch(playerID string) (model.MatchResult, bool) {
	return gs.gameManager.PollMatch(playerID)
}

func (gs *GameService) GameSnapshot(gameID string) (string, map[string]string, error) {
	return gs.gameManager.GameSnapshot(gameID)
}

func (gs *GameService) HandleMove(gameID, from, to string) error {
	return gs.gameManager.MakeMove(gameID, from, to)
}

func (gs *GameService) ResetGame(gameID string) error {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
