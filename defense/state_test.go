package defense

import (
	"math"
	"testing"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

func TestNewStateDefaults(t *testing.T) {
	h := newHarness(t)
	s := h.s

	if s.HeartHealth() != constants.HeartMaxHealth || s.Energy() != constants.EnergyMax {
		t.Errorf("unexpected start health=%d energy=%d", s.HeartHealth(), s.Energy())
	}
	if s.Wave() != 1 || s.Score() != 0 || s.Over() || s.Paused() {
		t.Errorf("unexpected start wave=%d score=%d over=%v paused=%v", s.Wave(), s.Score(), s.Over(), s.Paused())
	}
	if s.MedicineUses() != constants.MedicineUses {
		t.Errorf("expected %d medicine uses, got %d", constants.MedicineUses, s.MedicineUses())
	}
	p := s.Protector()
	if p.Pos != (vmath.Vec2F{X: 100, Y: 100}) || p.Health != constants.ProtectorMaxHealth {
		t.Errorf("unexpected protector %+v", p)
	}
}

func TestDefenderKillsHostile(t *testing.T) {
	h := newHarness(t)
	h.at(1)
	c := h.addCell(vmath.Vec2F{X: 100, Y: 0})
	h.addVirus(vmath.Vec2F{X: 110, Y: 0})

	h.s.Tick(1.0 / 60)

	if h.s.Score() != constants.KillScore {
		t.Errorf("expected score %d, got %d", constants.KillScore, h.s.Score())
	}
	if c.Kills != 1 {
		t.Errorf("expected 1 kill, got %d", c.Kills)
	}
	if c.TargetVirus != NoEntity {
		t.Error("target should be cleared after the kill")
	}
	// Killed virus is replaced immediately
	if h.s.VirusCount() != 1 {
		t.Errorf("expected replacement spawn, got %d viruses", h.s.VirusCount())
	}
	h.checkCornerCounts()

	kinds := h.drainKinds()
	if kinds[EventVirusKilled] != 1 {
		t.Errorf("expected one kill event, got %v", kinds)
	}
}

func TestKillCapRemovesCell(t *testing.T) {
	tests := []struct {
		name      string
		boosted   bool
		kills     int
		wantAlive bool
	}{
		{"unboosted reaches cap", false, constants.CellMaxKills - 1, false},
		{"boosted below cap", true, constants.CellMaxKills - 1, true},
		{"boosted reaches cap", true, constants.CellMaxKills + constants.CellBoostKills - 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.at(1)
			c := h.addCell(vmath.Vec2F{X: -100, Y: 0})
			c.Boosted = tt.boosted
			c.Kills = tt.kills
			h.addVirus(vmath.Vec2F{X: -110, Y: 0})

			h.s.Tick(1.0 / 60)

			if c.Kills > c.KillCap() {
				t.Fatalf("kills %d exceed cap %d", c.Kills, c.KillCap())
			}
			alive := h.s.CellCount() == 1
			if alive != tt.wantAlive {
				t.Errorf("cell alive = %v, want %v", alive, tt.wantAlive)
			}
		})
	}
}

func TestPickupCollectedOnce(t *testing.T) {
	h := newHarness(t)
	h.at(1)
	c := h.addCell(vmath.Vec2F{X: 100, Y: 0})
	h.addPickup(vmath.Vec2F{X: 130, Y: 0})

	h.s.Tick(1.0 / 60)

	if !c.Boosted {
		t.Fatal("cell should be boosted after touching the pickup")
	}
	if h.s.PickupCount() != 0 {
		t.Errorf("collected pickup should leave the collection, have %d", h.s.PickupCount())
	}
	if h.s.pickupByID(c.TargetPickup) != nil {
		t.Error("stale pickup handle should resolve to nothing")
	}
	if c.KillCap() != constants.CellMaxKills+constants.CellBoostKills {
		t.Errorf("boosted cap = %d", c.KillCap())
	}
}

func TestCellCollectsInRange(t *testing.T) {
	h := newHarness(t)
	h.at(1)
	c := h.addCell(vmath.Vec2F{X: 100, Y: 0})
	p := h.addPickup(vmath.Vec2F{X: 120, Y: 0})
	c.TargetPickup = p.ID

	h.s.Tick(1.0 / 60)

	if !c.Boosted || !p.Collected || h.s.PickupCount() != 0 {
		t.Errorf("expected collection in range: boosted=%v collected=%v count=%d", c.Boosted, p.Collected, h.s.PickupCount())
	}
	if c.TargetPickup != NoEntity {
		t.Error("boosted cell should not keep a pickup target")
	}
}

func TestScheduledPickupsSpawnOnce(t *testing.T) {
	h := newHarness(t)
	h.at(30)
	h.step(1)
	if h.s.PickupCount() != 1 {
		t.Fatalf("expected one pickup at 30s, got %d", h.s.PickupCount())
	}
	h.step(120)
	if h.s.PickupCount() != 1 {
		t.Errorf("pickup respawned, have %d", h.s.PickupCount())
	}
	p := h.s.pickups[0]
	d := vmath.V2FMag(p.Pos)
	if d < constants.PickupMinDistance || d > constants.PickupMaxDistance {
		t.Errorf("pickup at distance %f outside spawn band", d)
	}
	if p.Pulse <= 0 || p.Rotation <= 0 {
		t.Error("pickup animation should advance")
	}
}

func TestScatterDurationZeroSeeksImmediately(t *testing.T) {
	h := newHarness(t)
	v := newVirus(h.s.nextID(), 3, 1, h.s.now(), h.s.rng)
	v.ScatterDuration = 0
	h.s.viruses = append(h.s.viruses, v)
	h.s.cornerCounts[3]++

	before := v.DistanceToHeart()
	h.step(1)
	after := v.DistanceToHeart()

	stepLen := v.Speed / 60
	if after >= before {
		t.Fatalf("virus should approach the heart: %f -> %f", before, after)
	}
	if before-after > stepLen*1.5 {
		t.Errorf("moved %f, more than one jittered step %f", before-after, stepLen)
	}
	if !v.Seeking(h.s.now()) {
		t.Error("virus should be seeking")
	}
}

func TestScatterPhaseHeadsToScatterTarget(t *testing.T) {
	h := newHarness(t)
	v := newVirus(h.s.nextID(), 0, 1, h.s.now(), h.s.rng)
	v.ScatterDuration = 3
	v.ScatterTarget = vmath.Vec2F{X: -600, Y: 0}
	h.s.viruses = append(h.s.viruses, v)
	h.s.cornerCounts[0]++

	h.step(1)
	if v.Pos.X != -600 || v.Pos.Y <= -600 {
		t.Errorf("expected straight move toward scatter target, at %v", v.Pos)
	}

	v.Pos = vmath.Vec2F{X: -600, Y: -4}
	h.step(1)
	if !v.Scattered {
		t.Error("arriving within range should end scatter")
	}
}

func TestWaveBoundary(t *testing.T) {
	h := newHarness(t)
	v := h.addVirus(vmath.Vec2F{X: -500, Y: 500})

	h.at(24.99)
	h.s.Tick(1.0 / 60)
	if h.s.Wave() != 1 {
		t.Fatalf("expected wave 1 before boundary, got %d", h.s.Wave())
	}

	h.at(constants.WaveInterval)
	h.s.Tick(1.0 / 60)
	if h.s.Wave() != 2 {
		t.Fatalf("expected wave 2 at boundary, got %d", h.s.Wave())
	}
	if v.Speed != VirusSpeed(2) || VirusSpeed(2) != 31 {
		t.Errorf("expected live virus speed 31, got %f", v.Speed)
	}
	if !h.s.Snapshot().WaveBanner {
		t.Error("wave banner should show after advancing")
	}

	h.at(99)
	h.s.Tick(1.0 / 60)
	if h.s.Wave() != constants.MaxWaves {
		t.Errorf("wave should cap at %d, got %d", constants.MaxWaves, h.s.Wave())
	}
}

func TestDirectorFormulas(t *testing.T) {
	tuning := DefaultTuning()
	wantTargets := []int{7, 11, 15, 19}
	wantIntervals := []float64{1.7, 1.4, 1.1, 0.8}
	for w := 1; w <= 4; w++ {
		if got := tuning.TargetPopulation(w); got != wantTargets[w-1] {
			t.Errorf("wave %d target = %d, want %d", w, got, wantTargets[w-1])
		}
		if got := SpawnInterval(w); math.Abs(got-wantIntervals[w-1]) > 1e-9 {
			t.Errorf("wave %d interval = %f, want %f", w, got, wantIntervals[w-1])
		}
	}
	if got := tuning.TargetPopulation(10); got != constants.MaxViruses {
		t.Errorf("target should clamp to %d, got %d", constants.MaxViruses, got)
	}
	if SpawnInterval(10) != constants.MinSpawnInterval {
		t.Error("interval should floor at minimum")
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 30; i++ {
		h.s.spawnVirus()
	}
	if h.s.VirusCount() != constants.MaxViruses {
		t.Errorf("expected cap %d, got %d", constants.MaxViruses, h.s.VirusCount())
	}
	h.checkCornerCounts()
}

func TestProtectorShieldsHeart(t *testing.T) {
	h := newHarness(t)
	h.addVirus(vmath.Vec2F{X: 100, Y: 100})

	h.step(1)

	if h.s.Protector().Health != constants.ProtectorMaxHealth-constants.ProtectorDamage {
		t.Errorf("protector health = %d", h.s.Protector().Health)
	}
	if h.s.HeartHealth() != constants.HeartMaxHealth {
		t.Errorf("heart should be untouched, got %d", h.s.HeartHealth())
	}
	if h.s.VirusCount() != 1 {
		t.Errorf("expected replacement virus, got %d", h.s.VirusCount())
	}
	h.checkCornerCounts()
}

func TestHeartHitAndLoss(t *testing.T) {
	h := newHarness(t)
	h.addVirus(vmath.Vec2F{X: -30, Y: 0})
	h.step(1)
	if h.s.HeartHealth() != constants.HeartMaxHealth-constants.HeartDamage {
		t.Fatalf("heart health = %d", h.s.HeartHealth())
	}

	h.s.heartHealth = constants.HeartDamage
	h.addVirus(vmath.Vec2F{X: 0, Y: -30})
	h.step(1)
	if !h.s.Over() || h.s.Won() {
		t.Errorf("expected loss, over=%v won=%v", h.s.Over(), h.s.Won())
	}
	if h.drainKinds()[EventLost] != 1 {
		t.Error("expected a lost event")
	}

	// Terminal state stops the simulation
	ticks := h.s.Ticks()
	h.step(10)
	if h.s.Ticks() != ticks {
		t.Error("ticks should not advance after game over")
	}
}

func TestWinAtDuration(t *testing.T) {
	h := newHarness(t)
	h.at(constants.GameDuration)
	h.s.Tick(1.0 / 60)
	if !h.s.Over() || !h.s.Won() {
		t.Errorf("expected win at %vs", constants.GameDuration)
	}
	if h.s.Snapshot().TimeLeft != 0 {
		t.Error("time left should be zero after the level ends")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	h := newHarness(t)
	h.at(2)
	v := h.addVirus(vmath.Vec2F{X: 300, Y: 300})
	h.s.HandleKey(KeyPause)
	if !h.s.Paused() {
		t.Fatal("expected paused")
	}

	pos := v.Pos
	elapsed := h.s.Elapsed()
	h.step(300)

	if v.Pos != pos {
		t.Errorf("virus moved while paused: %v -> %v", pos, v.Pos)
	}
	if h.s.Elapsed() != elapsed {
		t.Errorf("clock advanced while paused: %f -> %f", elapsed, h.s.Elapsed())
	}
	if h.s.Ticks() != 0 {
		t.Errorf("expected no gameplay ticks, got %d", h.s.Ticks())
	}
	if r := h.s.Click(650, 400); r != RejectedInactive {
		t.Errorf("click while paused = %v", r)
	}

	h.s.HandleKey(KeyPause)
	h.step(1)
	if v.Pos == pos {
		t.Error("virus should move after resume")
	}
	if math.Abs(h.s.Elapsed()-(elapsed+1.0/60)) > 1e-6 {
		t.Errorf("resume should continue from the pause point, elapsed %f", h.s.Elapsed())
	}
}

func TestEnergyRegen(t *testing.T) {
	h := newHarness(t)
	h.s.energy = 50
	h.at(10)
	h.step(1)
	if h.s.Energy() != 55 {
		t.Fatalf("expected 55 energy, got %d", h.s.Energy())
	}
	h.step(1)
	if h.s.Energy() != 55 {
		t.Errorf("regen should wait a full interval, got %d", h.s.Energy())
	}

	h.s.energy = constants.EnergyMax - 1
	h.at(25)
	h.step(1)
	if h.s.Energy() != constants.EnergyMax {
		t.Errorf("regen should clamp at %d, got %d", constants.EnergyMax, h.s.Energy())
	}
}

func TestMedicineBoostDoublesSpeed(t *testing.T) {
	h := newHarness(t)
	h.at(1)
	c := h.addCell(vmath.Vec2F{X: 200, Y: 0})
	h.addVirus(vmath.Vec2F{X: 200, Y: 250})
	p := h.addPickup(vmath.Vec2F{X: 200, Y: -150})
	c.TargetPickup = p.ID

	if !h.s.ActivateMedicine() {
		t.Fatal("medicine should activate")
	}
	if c.TargetPickup != NoEntity && c.TargetPickup != p.ID {
		t.Error("re-acquire produced an unknown pickup")
	}
	if h.s.cellSpeed() != constants.CellSpeed*2 {
		t.Errorf("expected doubled speed, got %f", h.s.cellSpeed())
	}

	h.at(1 + constants.MedicineDuration)
	h.s.Tick(1.0 / 60)
	if h.s.MedicineActive() {
		t.Error("medicine should expire")
	}
	if h.s.cellSpeed() != constants.CellSpeed {
		t.Errorf("speed should return to base, got %f", h.s.cellSpeed())
	}

	for i := 0; i < constants.MedicineUses; i++ {
		h.s.ActivateMedicine()
	}
	if h.s.MedicineUses() != 0 || h.s.ActivateMedicine() {
		t.Error("medicine should run out")
	}
}

func TestOpeningBoostCountsDown(t *testing.T) {
	h := newHarness(t)
	tuning := DefaultTuning()
	tuning.OpeningBoost = 1
	h.s = New(tuning, h.s.clock, h.s.rng)

	if h.s.cellSpeed() != constants.CellSpeed*2 {
		t.Fatal("opening boost should double cell speed")
	}
	h.step(61)
	if h.s.cellSpeed() != constants.CellSpeed {
		t.Errorf("boost should have expired, %f left", h.s.ImmuneBoostLeft())
	}
}

func TestActivationDelay(t *testing.T) {
	h := newHarness(t)
	h.at(5)
	if r := h.s.PlaceAt(vmath.Vec2F{X: 150, Y: 0}); r != Placed {
		t.Fatalf("placement failed: %v", r)
	}
	c := h.s.cells[0]
	h.addVirus(vmath.Vec2F{X: 250, Y: 0})
	pos := c.Pos

	h.step(10)
	if c.Pos != pos || c.TargetVirus != NoEntity {
		t.Error("cell should be inert during activation delay")
	}
	h.step(30)
	if c.Pos == pos {
		t.Error("cell should move once active")
	}
}

func TestResetRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.at(40)
	h.step(5)
	h.addCell(vmath.Vec2F{X: 100, Y: 0})
	h.addVirus(vmath.Vec2F{X: 200, Y: 200})
	h.s.ActivateMedicine()
	h.s.HandleKey(KeyView)
	h.s.HandleKey(KeyPanLeft)
	h.s.HandleKey(KeyForward)
	h.s.score = 120
	h.s.heartHealth = 30
	h.s.energy = 10
	h.s.HandleKey(KeyPause)

	h.s.HandleKey(KeyReset)

	s := h.s
	if s.VirusCount() != 0 || s.CellCount() != 0 || s.PickupCount() != 0 {
		t.Errorf("collections not cleared: %d %d %d", s.VirusCount(), s.CellCount(), s.PickupCount())
	}
	if s.CornerCounts() != [constants.CornerCount]int{} {
		t.Errorf("corner counts not cleared: %v", s.CornerCounts())
	}
	if s.Score() != 0 || s.HeartHealth() != constants.HeartMaxHealth || s.Energy() != constants.EnergyMax || s.Wave() != 1 {
		t.Errorf("counters not restored: score=%d heart=%d energy=%d wave=%d", s.Score(), s.HeartHealth(), s.Energy(), s.Wave())
	}
	if s.Paused() || s.Over() || s.ViewMode() || s.MedicineActive() {
		t.Error("flags not restored")
	}
	if s.MedicineUses() != constants.MedicineUses {
		t.Errorf("medicine uses = %d", s.MedicineUses())
	}
	if s.Elapsed() != 0 {
		t.Errorf("clock not restarted, elapsed %f", s.Elapsed())
	}
	if s.Protector() != newProtector() {
		t.Errorf("protector not restored: %+v", s.Protector())
	}
	if s.Camera() != DefaultCamera() {
		t.Error("camera not restored")
	}

	// Pickup schedule is re-armed
	h.mock.AdvanceSeconds(31)
	h.step(1)
	if s.PickupCount() != 1 {
		t.Errorf("expected pickup schedule to restart, got %d", s.PickupCount())
	}
}

func TestCornerCountsStayConsistentLongRun(t *testing.T) {
	h := newHarness(t)
	rng := vmath.NewFastRand(99)
	for i := 0; i < 12; i++ {
		angle := rng.Uniform(0, 2*math.Pi)
		dist := rng.Uniform(constants.CellMinHeartDistance+1, constants.CellMaxHeartDistance-1)
		h.s.PlaceAt(vmath.V2FFromAngle(angle, dist))
	}

	for i := 0; i < 60*90 && !h.s.Over(); i++ {
		h.step(1)
		h.checkCornerCounts()
		if h.s.VirusCount() > constants.MaxViruses {
			t.Fatalf("virus population %d above cap", h.s.VirusCount())
		}
		for _, c := range h.s.cells {
			if c.Kills > c.KillCap() {
				t.Fatalf("cell kills %d above cap %d", c.Kills, c.KillCap())
			}
			d := vmath.V2FMag(c.Pos)
			if d < CellAnnulus.Min-1e-6 || d > CellAnnulus.Max+1e-6 {
				t.Fatalf("cell left the annulus at distance %f", d)
			}
		}
	}
	if h.s.TotalSpawned() == 0 {
		t.Error("director never spawned")
	}
}
