package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"boardsync/internal/service"
	"boardsync/internal/ws"

	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{gameService: gameService}
}

// HandleConnection runs the read loop for one game socket. Messages are
// handled strictly in arrival order, each to completion, so a connection
// never observes a half-applied move.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("register connection for game %s: %v", gameID, err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("game %s: read: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("game %s: parse message: %v", gameID, err)
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			// A rejected request never changes state; only the
			// requester hears about it.
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move payload: %w", err)
		}
		return wsc.gameService.HandleMove(gameID, move.From, move.To)

	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, err := json.Marshal(errorMsg)
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{Type: ws.MessageTypeError, Payload: payload}); err != nil {
		log.Printf("send error message: %v", err)
	}
}
