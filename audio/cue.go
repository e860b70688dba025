package audio

import (
	"github.com/lixenwraith/arcade/catcher"
	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/shooter"
)

// Cue names a sound the games can ask for
type Cue uint8

const (
	CueNone Cue = iota
	CueFire
	CueHit
	CueDamage
	CuePlace
	CueReject
	CuePickup
	CueMedicine
	CueWave
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CueDamage:
		return "damage"
	case CuePlace:
		return "place"
	case CueReject:
		return "reject"
	case CuePickup:
		return "pickup"
	case CueMedicine:
		return "medicine"
	case CueWave:
		return "wave"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "none"
}

// DefenseCue maps a defense event to its sound
func DefenseCue(ev defense.Event) Cue {
	switch ev.Kind {
	case defense.EventVirusKilled:
		return CueHit
	case defense.EventHeartHit, defense.EventProtectorHit:
		return CueDamage
	case defense.EventCellPlaced:
		return CuePlace
	case defense.EventPlacementRejected:
		return CueReject
	case defense.EventPickupCollected:
		return CuePickup
	case defense.EventMedicineStarted:
		return CueMedicine
	case defense.EventWaveStarted:
		return CueWave
	case defense.EventWon:
		return CueWin
	case defense.EventLost:
		return CueLose
	}
	return CueNone
}

// ShooterCue maps a shooter event to its sound
func ShooterCue(ev shooter.Event) Cue {
	switch ev.Kind {
	case shooter.EventFire:
		return CueFire
	case shooter.EventEnemyHit:
		return CueHit
	case shooter.EventPlayerHit:
		return CueDamage
	case shooter.EventMiss:
		return CueReject
	case shooter.EventGameOver:
		return CueLose
	}
	return CueNone
}

// CatcherCue maps a catcher event to its sound
func CatcherCue(ev catcher.Event) Cue {
	switch ev.Kind {
	case catcher.EventCatch:
		return CuePickup
	case catcher.EventGameOver:
		return CueLose
	}
	return CueNone
}
