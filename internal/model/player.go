package model

// Player identifies a participant waiting for or seated in a game.
type Player struct {
	ID string
}

// MatchResult is handed to a queued player once the matchmaker has paired
// them into a game.
type MatchResult struct {
	GameID string `json:"gameId"`
	Color  string `json:"color"`
}
