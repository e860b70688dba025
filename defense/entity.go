package defense

// EntityID is a handle to a virus or pickup
// IDs are never reused within a State, so a handle to a removed entity resolves to nothing
type EntityID uint64

// NoEntity is the empty handle
const NoEntity EntityID = 0

func (s *State) nextID() EntityID {
	s.lastID++
	return s.lastID
}

// virusByID resolves a handle against the live virus collection
func (s *State) virusByID(id EntityID) *Virus {
	if id == NoEntity {
		return nil
	}
	for _, v := range s.viruses {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// pickupByID resolves a handle against uncollected pickups
func (s *State) pickupByID(id EntityID) *Pickup {
	if id == NoEntity {
		return nil
	}
	for _, p := range s.pickups {
		if p.ID == id && !p.Collected {
			return p
		}
	}
	return nil
}

func (s *State) removeVirus(target *Virus) bool {
	for i, v := range s.viruses {
		if v == target {
			s.viruses = append(s.viruses[:i], s.viruses[i+1:]...)
			s.cornerCounts[v.Corner]--
			return true
		}
	}
	return false
}

func (s *State) removePickup(target *Pickup) {
	target.Collected = true
	for i, p := range s.pickups {
		if p == target {
			s.pickups = append(s.pickups[:i], s.pickups[i+1:]...)
			return
		}
	}
}

func (s *State) removeCell(target *ImmuneCell) {
	for i, c := range s.cells {
		if c == target {
			s.cells = append(s.cells[:i], s.cells[i+1:]...)
			return
		}
	}
}
