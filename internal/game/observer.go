package game

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer receives session notifications from the engine.
// Calls are made after the engine lock is released.
type Observer interface {
	SessionStarted(t Telemetry)
	TelemetryChanged(t Telemetry)
	SessionEnded(o Outcome)
}

// Telemetry is the read-only status panel view of a session.
type Telemetry struct {
	SessionID     string  `json:"session_id"`
	Generation    uint64  `json:"generation"`
	Status        Status  `json:"status"`
	Lives         int     `json:"lives"`
	MaxBombs      int     `json:"max_bombs"`
	BombRange     int     `json:"bomb_range"`
	BaseSpeed     float64 `json:"base_speed"`
	BotsRemaining int     `json:"bots_remaining"`
}

// Outcome reports how a session ended.
type Outcome struct {
	SessionID  string `json:"session_id"`
	Generation uint64 `json:"generation"`
	Won        bool   `json:"won"`
}
