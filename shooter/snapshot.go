package shooter

// Point is a plain position for renderers and the wire
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BulletView struct {
	Point
	Angle float64 `json:"angle"`
}

// Snapshot is a read-only copy of the shooter state
type Snapshot struct {
	Player      Point        `json:"player"`
	Angle       float64      `json:"angle"`
	Life        int          `json:"life"`
	Score       int          `json:"score"`
	Misses      int          `json:"misses"`
	Over        bool         `json:"over"`
	Cheat       bool         `json:"cheat"`
	FirstPerson bool         `json:"first_person"`
	GunFollow   bool         `json:"gun_follow"`
	Pulse       float64      `json:"pulse"`
	CameraAngle float64      `json:"camera_angle"`
	CameraZ     float64      `json:"camera_z"`
	Enemies     []Point      `json:"enemies"`
	Bullets     []BulletView `json:"bullets"`
}

// Snapshot copies the current state
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Player:      Point{s.player.Pos.X, s.player.Pos.Y},
		Angle:       s.player.Angle,
		Life:        s.player.Life,
		Score:       s.score,
		Misses:      s.misses,
		Over:        s.over,
		Cheat:       s.cheat,
		FirstPerson: s.firstPerson,
		GunFollow:   s.gunFollow,
		Pulse:       s.pulse,
		CameraAngle: s.camera.Angle,
		CameraZ:     s.camera.Height,
		Enemies:     make([]Point, 0, len(s.enemies)),
		Bullets:     make([]BulletView, 0, len(s.bullets)),
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, Point{e.Pos.X, e.Pos.Y})
	}
	for _, b := range s.bullets {
		snap.Bullets = append(snap.Bullets, BulletView{Point: Point{b.Pos.X, b.Pos.Y}, Angle: b.Angle})
	}
	return snap
}
