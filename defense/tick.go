package defense

// Tick advances the simulation by dt seconds of game time
// Ordering: clock read, director, viruses with contact resolution, cells, pickups
func (s *State) Tick(dt float64) {
	if s.over || !s.protector.Alive() {
		s.protector.animateFall()
	}
	if s.over || s.clock.IsPaused() {
		return
	}
	s.ticks++

	now := s.now()
	if now >= s.tuning.GameDuration || s.wave > s.tuning.MaxWaves {
		s.finish(true)
		return
	}

	s.advanceWave(now)
	s.scheduleSpawn(now)
	s.spawnScheduledPickups(now)
	s.regenEnergy(now)

	if s.immuneBoost > 0 {
		s.immuneBoost -= dt
	}
	if s.medicineActive && now >= s.medicineEndsAt {
		s.medicineActive = false
		s.emit(Event{Kind: EventMedicineEnded})
	}

	for _, v := range append([]*Virus(nil), s.viruses...) {
		v.update(now, dt, s.rng)
		s.resolveVirus(v)
		if s.over {
			return
		}
	}

	for _, c := range append([]*ImmuneCell(nil), s.cells...) {
		if s.updateCell(c, now, dt) {
			s.removeCell(c)
			s.emit(Event{Kind: EventCellExpired, Pos: c.Pos, Value: c.Kills})
		}
	}

	for _, p := range s.pickups {
		p.animate(dt)
	}
	s.collectTouchedPickups()
}
