package controller

import (
	"boardsync/internal/service"

	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// CreateGame opens a new session. An optional "state" field seeds the board
// from an encoded snapshot instead of the opening position.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var body struct {
		State string `json:"state"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "malformed request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(body.State)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color.String(),
	})
}

// GetGameState reports the canonical encoded board and the seat assignments.
func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	encoded, seats, err := gc.gameService.GameSnapshot(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"state":   encoded,
		"players": seats,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// MatchmakingStatus polls for a pairing result. It answers 200 with the game
// ID and color once the matchmaker has paired the player, 204 otherwise.
func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	result, ok := gc.gameService.PollMatch(playerID)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(result)
}
