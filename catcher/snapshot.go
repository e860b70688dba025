package catcher

// Snapshot is a read-only copy of the catcher state
type Snapshot struct {
	PaddleX  float64 `json:"paddle_x"`
	DiamondX float64 `json:"diamond_x"`
	DiamondY float64 `json:"diamond_y"`
	Speed    float64 `json:"speed"`
	Color    Color   `json:"color"`
	Score    int     `json:"score"`
	Over     bool    `json:"over"`
	Paused   bool    `json:"paused"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		PaddleX:  s.paddleX,
		DiamondX: s.diamond.Pos.X,
		DiamondY: s.diamond.Pos.Y,
		Speed:    s.diamond.Speed,
		Color:    s.diamond.Color,
		Score:    s.score,
		Over:     s.over,
		Paused:   s.clock.IsPaused(),
	}
}
