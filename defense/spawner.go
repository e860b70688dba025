package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
)

// SpawnInterval is the minimum gap between scheduled spawns during wave
func SpawnInterval(wave int) float64 {
	return math.Max(constants.MinSpawnInterval,
		constants.BaseSpawnInterval-float64(wave)*constants.SpawnIntervalPerWave)
}

// TargetPopulation is the live virus count the director tops up toward during wave
func (t Tuning) TargetPopulation(wave int) int {
	return min(t.MaxViruses, constants.BaseTargetPopulation+wave*constants.TargetPopulationPerWave)
}

// WaveAt is the wave number for game time now
func (t Tuning) WaveAt(now float64) int {
	return min(int(math.Floor(now/t.WaveInterval))+1, t.MaxWaves)
}

// advanceWave moves to the wave for now; waves only go up
func (s *State) advanceWave(now float64) {
	next := s.tuning.WaveAt(now)
	if next <= s.wave || s.wave >= s.tuning.MaxWaves {
		return
	}
	s.wave = next
	s.waveFlashAt = now
	speed := VirusSpeed(s.wave)
	for _, v := range s.viruses {
		v.Speed = speed
	}
	s.emit(Event{Kind: EventWaveStarted, Value: s.wave})
}

// scheduleSpawn adds one virus when the interval has passed and the wave target is not met
func (s *State) scheduleSpawn(now float64) {
	if now-s.lastSpawn > SpawnInterval(s.wave) && len(s.viruses) < s.tuning.TargetPopulation(s.wave) {
		s.spawnVirus()
		s.lastSpawn = now
	}
}

// spawnVirus places a virus on a random corner, bounded only by MaxViruses
// Used directly for replacements after a kill or hit
func (s *State) spawnVirus() {
	if len(s.viruses) >= s.tuning.MaxViruses {
		return
	}
	corner := s.rng.Intn(constants.CornerCount)
	v := newVirus(s.nextID(), corner, s.wave, s.now(), s.rng)
	s.viruses = append(s.viruses, v)
	s.cornerCounts[corner]++
	s.spawned++
}

// regenEnergy grants energy on a fixed period
func (s *State) regenEnergy(now float64) {
	if now-s.lastRegen > s.tuning.EnergyRegenInterval {
		s.energy = min(constants.EnergyMax, s.energy+constants.EnergyRegenAmount)
		s.lastRegen = now
	}
}
