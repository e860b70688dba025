package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// PlacementResult is the outcome of a placement click
// Rejections are ordinary outcomes, not errors
type PlacementResult uint8

const (
	Placed PlacementResult = iota
	MedicineActivated
	RejectedInactive
	RejectedOutsideScreen
	RejectedOutsideSafeArea
	RejectedOutsideZone
	RejectedCellLimit
	RejectedEnergy
	RejectedTooClose
)

func (r PlacementResult) String() string {
	switch r {
	case Placed:
		return "immune cell placed"
	case MedicineActivated:
		return "medicine boost activated"
	case RejectedInactive:
		return "game is not running"
	case RejectedOutsideScreen:
		return "click outside screen"
	case RejectedOutsideSafeArea:
		return "outside safe game area"
	case RejectedOutsideZone:
		return "outside placement zone"
	case RejectedCellLimit:
		return "maximum immune cells placed"
	case RejectedEnergy:
		return "not enough energy"
	case RejectedTooClose:
		return "too close to heart"
	default:
		return "unknown"
	}
}

// Accepted reports whether the click changed the game
func (r PlacementResult) Accepted() bool {
	return r == Placed || r == MedicineActivated
}

// Key is a discrete control input
type Key uint8

const (
	KeyNone Key = iota
	KeyForward
	KeyBackward
	KeyTurnLeft
	KeyTurnRight
	KeyPause
	KeyView
	KeyReset
	KeyPanLeft
	KeyPanRight
	KeyPanUp
	KeyPanDown
)

// HandleKey applies a key press
func (s *State) HandleKey(k Key) {
	if !s.over && !s.clock.IsPaused() && s.protector.Alive() {
		switch k {
		case KeyForward:
			s.protector.MoveForward(constants.ProtectorMoveStep)
		case KeyBackward:
			s.protector.MoveBackward(constants.ProtectorMoveStep)
		case KeyTurnLeft:
			s.protector.RotateLeft(constants.ProtectorTurnStep)
		case KeyTurnRight:
			s.protector.RotateRight(constants.ProtectorTurnStep)
		}
	}

	switch k {
	case KeyPause:
		s.TogglePause()
	case KeyView:
		s.viewMode = !s.viewMode
	case KeyReset:
		s.Reset()
	case KeyPanLeft, KeyPanRight, KeyPanUp, KeyPanDown:
		if s.viewMode {
			s.panCamera(k)
		}
	}
}

func (s *State) panCamera(k Key) {
	step := constants.CameraPanStep
	switch k {
	case KeyPanLeft:
		s.camera.Pan(-step, 0)
	case KeyPanRight:
		s.camera.Pan(step, 0)
	case KeyPanUp:
		s.camera.Pan(0, -step)
	case KeyPanDown:
		s.camera.Pan(0, step)
	}
}

// TogglePause pauses or resumes; ignored once the game is over
func (s *State) TogglePause() {
	if s.over {
		return
	}
	if s.clock.Toggle() {
		s.emit(Event{Kind: EventPaused})
	} else {
		s.emit(Event{Kind: EventResumed})
	}
}

// MedicineCardHit reports whether a screen click (origin top-left) lands on the medicine card
func MedicineCardHit(sx, sy float64) bool {
	card := vmath.CenteredBox(
		vmath.Vec2F{X: constants.MedicineCardX, Y: constants.MedicineCardY},
		constants.MedicineCardWidth, constants.MedicineCardHeight,
	)
	return card.Contains(vmath.Vec2F{X: sx, Y: constants.ScreenHeight - sy})
}

// InSafeArea reports whether a screen click is inside the accepted placement region
func InSafeArea(sx, sy float64) bool {
	d := math.Hypot(sx-constants.SafeAreaCenterX, sy-constants.SafeAreaCenterY)
	return d <= constants.SafeAreaRadius &&
		sx >= constants.SafeAreaMinX && sx <= constants.SafeAreaMaxX &&
		sy >= constants.SafeAreaMinY && sy <= constants.SafeAreaMaxY
}

// Click handles a primary click at screen coordinates (origin top-left)
// The medicine card is checked first, then the click is mapped to the ground and placed
func (s *State) Click(sx, sy float64) PlacementResult {
	if s.over || s.clock.IsPaused() {
		return s.reject(RejectedInactive)
	}

	if MedicineCardHit(sx, sy) && s.ActivateMedicine() {
		return MedicineActivated
	}

	if sx < 0 || sx > constants.ScreenWidth || sy < 0 || sy > constants.ScreenHeight {
		return s.reject(RejectedOutsideScreen)
	}
	if !InSafeArea(sx, sy) {
		return s.reject(RejectedOutsideSafeArea)
	}

	world := s.camera.ScreenToWorld(sx, sy)
	s.marker = world
	s.markerAt = s.now()
	s.hasMarker = true

	return s.PlaceAt(world)
}

// PlaceAt places an immune cell at a world position after zone, cap, energy and clearance checks
func (s *State) PlaceAt(world vmath.Vec2F) PlacementResult {
	if s.over || s.clock.IsPaused() {
		return s.reject(RejectedInactive)
	}

	d := vmath.V2FMag(world)
	switch {
	case d > constants.CellMaxHeartDistance:
		return s.reject(RejectedOutsideZone)
	case len(s.cells) >= s.tuning.MaxCells:
		return s.reject(RejectedCellLimit)
	case s.energy < s.tuning.PlacementCost:
		return s.reject(RejectedEnergy)
	case d < constants.CellMinHeartDistance:
		return s.reject(RejectedTooClose)
	}

	s.cells = append(s.cells, &ImmuneCell{Pos: world, PlacedAt: s.now()})
	s.energy -= s.tuning.PlacementCost
	s.setFeedback(Placed)
	s.emit(Event{Kind: EventCellPlaced, Pos: world, Value: int(Placed)})
	return Placed
}

func (s *State) reject(r PlacementResult) PlacementResult {
	s.setFeedback(r)
	s.emit(Event{Kind: EventPlacementRejected, Value: int(r)})
	return r
}

func (s *State) setFeedback(r PlacementResult) {
	s.feedback = r
	s.feedbackAt = s.now()
	s.hasFeedback = true
}

// ActivateMedicine starts a global speed boost if a use remains
// Every cell drops its pickup target and re-acquires
func (s *State) ActivateMedicine() bool {
	if s.medicineUses <= 0 {
		return false
	}
	s.medicineActive = true
	s.medicineEndsAt = s.now() + constants.MedicineDuration
	s.medicineUses--
	for _, c := range s.cells {
		c.TargetPickup = NoEntity
		s.acquireTarget(c)
	}
	s.setFeedback(MedicineActivated)
	s.emit(Event{Kind: EventMedicineStarted, Value: s.medicineUses})
	return true
}
