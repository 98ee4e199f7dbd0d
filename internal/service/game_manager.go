package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"boardsync/internal/model"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	matchmakingInterval = time.Second
	reapInterval        = time.Minute
	reapIdleAfter       = time.Hour
	matchResultTTL      = 10 * time.Minute
)

// pendingMatch is a pairing result waiting to be collected, timestamped so
// results nobody polls for can be expired.
type pendingMatch struct {
	result   model.MatchResult
	pairedAt time.Time
}

// GameManager owns every live game session, the matchmaking queue, and the
// pairing results waiting to be collected.
type GameManager struct {
	mu      sync.RWMutex
	games   map[string]*model.Game
	queue   *model.Queue
	matches map[string]pendingMatch // playerID -> unclaimed pairing result
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		games:   make(map[string]*model.Game),
		queue:   model.NewQueue(),
		matches: make(map[string]pendingMatch),
	}
	go gm.processMatchmaking()
	go gm.reapIdleGames()
	return gm
}

// processMatchmaking periodically pairs the two longest-waiting players into
// a fresh game and parks a MatchResult for each to poll.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(matchmakingInterval)
	defer ticker.Stop()

	for range ticker.C {
		for gm.queue.Size() >= 2 {
			first, second := gm.queue.NextPair()

			gameID := uuid.New().String()
			game := model.NewGame(gameID)
			firstColor, err := game.AddPlayer(first.ID)
			if err != nil {
				log.Printf("matchmaking: seat %s: %v", first.ID, err)
				continue
			}
			secondColor, err := game.AddPlayer(second.ID)
			if err != nil {
				log.Printf("matchmaking: seat %s: %v", second.ID, err)
				continue
			}

			now := time.Now()
			gm.mu.Lock()
			gm.games[gameID] = game
			gm.matches[first.ID] = pendingMatch{
				result:   model.MatchResult{GameID: gameID, Color: firstColor.String()},
				pairedAt: now,
			}
			gm.matches[second.ID] = pendingMatch{
				result:   model.MatchResult{GameID: gameID, Color: secondColor.String()},
				pairedAt: now,
			}
			gm.mu.Unlock()
			log.Printf("matchmaking: paired %s and %s into game %s", first.ID, second.ID, gameID)
		}
	}
}

// reapIdleGames discards sessions that have no connections and have been
// quiet past the idle threshold, along with pairing results nobody
// collected.
func (gm *GameManager) reapIdleGames() {
	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()

	for range ticker.C {
		gm.reapStale()
	}
}

func (gm *GameManager) reapStale() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, game := range gm.games {
		if game.IdleWithoutConnections(reapIdleAfter) {
			delete(gm.games, id)
			log.Printf("reaped idle game %s", id)
		}
	}
	for playerID, match := range gm.matches {
		if time.Since(match.pairedAt) >= matchResultTTL {
			delete(gm.matches, playerID)
			log.Printf("reaped unclaimed match for player %s", playerID)
		}
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

// CreateGameFromEncoding seeds a new game from an encoded board snapshot.
func (gm *GameManager) CreateGameFromEncoding(gameID, encoded string) error {
	game, err := model.NewGameFromEncoding(gameID, encoded)
	if err != nil {
		return err
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.games[gameID] = game
	return nil
}

func (gm *GameManager) getGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID string) (model.Color, error) {
	game, err := gm.getGame(gameID)
	if err != nil {
		return model.Light, err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

// PollMatch returns and consumes a pending pairing result for the player.
func (gm *GameManager) PollMatch(playerID string) (model.MatchResult, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	match, ok := gm.matches[playerID]
	if ok {
		delete(gm.matches, playerID)
	}
	return match.result, ok
}

// GameSnapshot reports the canonical encoding and seat assignments.
func (gm *GameManager) GameSnapshot(gameID string) (string, map[string]string, error) {
	game, err := gm.getGame(gameID)
	if err != nil {
		return "", nil, err
	}
	return game.EncodedState(), game.Seats(), nil
}

func (gm *GameManager) MakeMove(gameID, from, to string) error {
	game, err := gm.getGame(gameID)
	if err != nil {
		return err
	}
	return game.HandleMove(from, to)
}

func (gm *GameManager) ResetGame(gameID string) error {
	game, err := gm.getGame(gameID)
	if err != nil {
		return err
	}
	game.Reset()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	game, err := gm.getGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	game, err := gm.getGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
