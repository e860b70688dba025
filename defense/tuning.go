package defense

import (
	"fmt"

	"github.com/lixenwraith/arcade/constants"
)

// Tuning holds the difficulty knobs that may be overridden by configuration
type Tuning struct {
	GameDuration        float64 // Level length in seconds
	WaveInterval        float64 // Seconds per wave
	MaxWaves            int
	MaxViruses          int
	MaxCells            int
	PlacementCost       int
	EnergyRegenInterval float64
	MedicineUses        int
	OpeningBoost        float64 // Global immune boost granted at start, in seconds
}

// DefaultTuning returns the stock rule set
func DefaultTuning() Tuning {
	return Tuning{
		GameDuration:        constants.GameDuration,
		WaveInterval:        constants.WaveInterval,
		MaxWaves:            constants.MaxWaves,
		MaxViruses:          constants.MaxViruses,
		MaxCells:            constants.MaxCells,
		PlacementCost:       constants.PlacementCost,
		EnergyRegenInterval: constants.EnergyRegenInterval,
		MedicineUses:        constants.MedicineUses,
	}
}

// Validate rejects values the simulation cannot run with
func (t Tuning) Validate() error {
	switch {
	case t.GameDuration <= 0:
		return fmt.Errorf("game duration must be positive, got %v", t.GameDuration)
	case t.WaveInterval <= 0:
		return fmt.Errorf("wave interval must be positive, got %v", t.WaveInterval)
	case t.MaxWaves < 1:
		return fmt.Errorf("max waves must be at least 1, got %d", t.MaxWaves)
	case t.MaxViruses < 1:
		return fmt.Errorf("max viruses must be at least 1, got %d", t.MaxViruses)
	case t.MaxCells < 0:
		return fmt.Errorf("max cells must not be negative, got %d", t.MaxCells)
	case t.PlacementCost < 0 || t.PlacementCost > constants.EnergyMax:
		return fmt.Errorf("placement cost must be within [0, %d], got %d", constants.EnergyMax, t.PlacementCost)
	case t.EnergyRegenInterval <= 0:
		return fmt.Errorf("energy regen interval must be positive, got %v", t.EnergyRegenInterval)
	case t.MedicineUses < 0:
		return fmt.Errorf("medicine uses must not be negative, got %d", t.MedicineUses)
	case t.OpeningBoost < 0:
		return fmt.Errorf("opening boost must not be negative, got %v", t.OpeningBoost)
	}
	return nil
}
