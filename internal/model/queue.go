package model

import (
	"fmt"
	"sync"
	"time"
)

type queuedPlayer struct {
	player   Player
	joinedAt time.Time
}

// Queue is the FIFO list of players waiting to be matched.
type Queue struct {
	mu      sync.Mutex
	players []queuedPlayer
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.player.ID == player.ID {
			return fmt.Errorf("player %s already in queue", player.ID)
		}
	}
	q.players = append(q.players, queuedPlayer{player: player, joinedAt: time.Now()})
	return nil
}

// NextPair pops the two longest-waiting players. Callers must ensure the
// queue holds at least two entries.
func (q *Queue) NextPair() (Player, Player) {
	q.mu.Lock()
	defer q.mu.Unlock()

	first, second := q.players[0].player, q.players[1].player
	q.players = q.players[2:]
	return first, second
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
