package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
)

// Point is a plain position for renderers and the wire
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type VirusView struct {
	Point
	Corner  int  `json:"corner"`
	Seeking bool `json:"seeking"`
}

type CellView struct {
	Point
	Kills   int  `json:"kills"`
	Cap     int  `json:"cap"`
	Boosted bool `json:"boosted"`
	Active  bool `json:"active"`
}

type PickupView struct {
	Point
	Pulse    float64 `json:"pulse"`
	Rotation float64 `json:"rotation"`
}

type ProtectorView struct {
	Point
	Angle  float64 `json:"angle"`
	Fall   float64 `json:"fall"`
	Health int     `json:"health"`
}

// Snapshot is a read-only copy of everything a renderer or spectator needs
type Snapshot struct {
	Elapsed  float64 `json:"elapsed"`
	TimeLeft float64 `json:"time_left"`
	Wave     int     `json:"wave"`
	// WaveBanner is set while the "Wave N!" notice should be shown
	WaveBanner bool `json:"wave_banner"`

	Score       int `json:"score"`
	Kills       int `json:"kills"`
	HeartHealth int `json:"heart_health"`
	Energy      int `json:"energy"`

	Over     bool `json:"over"`
	Won      bool `json:"won"`
	Paused   bool `json:"paused"`
	ViewMode bool `json:"view_mode"`

	MedicineUses   int     `json:"medicine_uses"`
	MedicineActive bool    `json:"medicine_active"`
	MedicineLeft   float64 `json:"medicine_left"`
	ImmuneBoost    float64 `json:"immune_boost"`

	Protector    ProtectorView              `json:"protector"`
	Viruses      []VirusView                `json:"viruses"`
	Cells        []CellView                 `json:"cells"`
	Pickups      []PickupView               `json:"pickups"`
	CornerCounts [constants.CornerCount]int `json:"corner_counts"`
	Marker       *Point                     `json:"marker,omitempty"`
	Feedback     string                     `json:"feedback,omitempty"`
	Camera       [3]float64                 `json:"camera"`
}

// Snapshot copies the current state
func (s *State) Snapshot() Snapshot {
	now := s.now()
	snap := Snapshot{
		Elapsed:        now,
		TimeLeft:       math.Max(0, s.tuning.GameDuration-now),
		Wave:           s.wave,
		WaveBanner:     s.waveFlashAt > 0 && now-s.waveFlashAt < constants.WaveFlashDuration,
		Score:          s.score,
		Kills:          s.score / constants.KillScore,
		HeartHealth:    s.heartHealth,
		Energy:         s.energy,
		Over:           s.over,
		Won:            s.won,
		Paused:         s.clock.IsPaused(),
		ViewMode:       s.viewMode,
		MedicineUses:   s.medicineUses,
		MedicineActive: s.medicineActive,
		ImmuneBoost:    math.Max(0, s.immuneBoost),
		CornerCounts:   s.cornerCounts,
		Camera:         [3]float64{s.camera.X, s.camera.Y, s.camera.Z},
		Protector: ProtectorView{
			Point:  Point{s.protector.Pos.X, s.protector.Pos.Y},
			Angle:  s.protector.Angle,
			Fall:   s.protector.Fall,
			Health: s.protector.Health,
		},
	}
	if s.medicineActive {
		snap.MedicineLeft = math.Max(0, s.medicineEndsAt-now)
	}

	snap.Viruses = make([]VirusView, 0, len(s.viruses))
	for _, v := range s.viruses {
		snap.Viruses = append(snap.Viruses, VirusView{
			Point:   Point{v.Pos.X, v.Pos.Y},
			Corner:  v.Corner,
			Seeking: v.Seeking(now),
		})
	}
	snap.Cells = make([]CellView, 0, len(s.cells))
	for _, c := range s.cells {
		snap.Cells = append(snap.Cells, CellView{
			Point:   Point{c.Pos.X, c.Pos.Y},
			Kills:   c.Kills,
			Cap:     c.KillCap(),
			Boosted: c.Boosted,
			Active:  c.Active(now),
		})
	}
	snap.Pickups = make([]PickupView, 0, len(s.pickups))
	for _, p := range s.pickups {
		snap.Pickups = append(snap.Pickups, PickupView{
			Point:    Point{p.Pos.X, p.Pos.Y},
			Pulse:    p.Pulse,
			Rotation: p.Rotation,
		})
	}

	if s.hasMarker && now-s.markerAt < constants.ClickMarkerDuration {
		snap.Marker = &Point{s.marker.X, s.marker.Y}
	}
	if s.hasFeedback && now-s.feedbackAt < constants.FeedbackDuration {
		snap.Feedback = s.feedback.String()
	}
	return snap
}
