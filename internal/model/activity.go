package model

import (
	"sync"
	"time"
)

// Activity records when a game last did anything, so the manager can tell
// abandoned sessions from quiet ones.
type Activity struct {
	mu   sync.Mutex
	last time.Time
}

func NewActivity() *Activity {
	return &Activity{last: time.Now()}
}

func (a *Activity) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = time.Now()
}

func (a *Activity) IdleFor() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return time.Since(a.last)
}
