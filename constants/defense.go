package constants

// Arena
const (
	// ArenaHalfExtent is the half side of the square arena; hostiles spawn on its corners
	ArenaHalfExtent = 600.0

	// ScatterMargin keeps scatter targets away from the arena edge
	ScatterMargin = 100.0

	// PlacementRadius is the radius of the defender placement zone around the heart
	PlacementRadius = 400.0
)

// Heart
const (
	// HeartMaxHealth is the starting health of the protected heart
	HeartMaxHealth = 100

	// HeartRadius is the visual and solver radius of the heart
	HeartRadius = 40.0

	// HeartHitDistance is the distance at which a virus damages the heart
	HeartHitDistance = 50.0

	// HeartDamage is the health removed per virus hit
	HeartDamage = 10
)

// Waves and timing
const (
	// GameDuration is the level length in seconds
	GameDuration = 100.0

	// WaveInterval is the length of each wave in seconds
	WaveInterval = 25.0

	// MaxWaves is the final wave number
	MaxWaves = 4

	// WaveFlashDuration is how long the "Wave N!" banner stays up
	WaveFlashDuration = 2.0

	// BaseSpawnInterval is the wave-0 interval between scheduled spawns
	BaseSpawnInterval = 2.0

	// SpawnIntervalPerWave shortens the spawn interval each wave
	SpawnIntervalPerWave = 0.3

	// MinSpawnInterval floors the spawn interval
	MinSpawnInterval = 0.8

	// BaseTargetPopulation and TargetPopulationPerWave give the wave target 3 + 4w
	BaseTargetPopulation    = 3
	TargetPopulationPerWave = 4

	// MaxViruses is the hard cap on live viruses
	MaxViruses = 20
)

// Virus
const (
	// VirusBaseSpeed is the wave-independent part of virus speed
	VirusBaseSpeed = 15.0

	// VirusSpeedPerWave is added to speed for each wave
	VirusSpeedPerWave = 8.0

	// VirusRadius is the collision radius of a virus
	VirusRadius = 15.0

	// ScatterMinDuration and ScatterMaxDuration bound the random scatter phase
	ScatterMinDuration = 1.0
	ScatterMaxDuration = 3.0

	// ScatterArrival is the distance at which a scatter target counts as reached
	ScatterArrival = 5.0

	// SeekJitter is the per-axis random drift as a fraction of the step
	SeekJitter = 0.2

	// CornerCount is the number of spawn corners
	CornerCount = 4
)

// Immune cells
const (
	// CellSize is the edge length of an immune cell
	CellSize = 25.0

	// CellRadius is half of CellSize
	CellRadius = CellSize / 2

	// CellSpeed is the unboosted movement speed
	CellSpeed = 30.0

	// CellAttackRange is the distance at which a cell destroys its target virus
	CellAttackRange = 20.0

	// CellCollectRange is the distance at which a cell collects its target pickup
	CellCollectRange = 25.0

	// CellMaxKills is the kill cap before a cell is consumed
	CellMaxKills = 3

	// CellBoostKills is added to the cap once a cell is boosted
	CellBoostKills = 2

	// CellActivationDelay is the inert period after placement in seconds
	CellActivationDelay = 0.5

	// CellVirusSight is the maximum acquisition distance for viruses
	CellVirusSight = 300.0

	// CellVirusBuffer is how much closer a peer must be to claim a virus
	CellVirusBuffer = 15.0

	// CellHeartWeight scales virus distance-to-heart in target priority
	CellHeartWeight = 0.3

	// CellPickupSight is the maximum acquisition distance for pickups
	CellPickupSight = 200.0

	// CellPickupBuffer is how much closer an unboosted peer must be to claim a pickup
	CellPickupBuffer = 10.0

	// CellHeartMargin is the extra clearance kept between cell and heart
	CellHeartMargin = 5.0

	// CellPushExtra is added to the inner push-out to avoid sticking on the boundary
	CellPushExtra = 2.0

	// CellClampIterations is the binary-search depth for the outer boundary
	CellClampIterations = 10

	// CellMinHeartDistance is the inner annulus radius for cell centers
	CellMinHeartDistance = HeartRadius + CellRadius + CellHeartMargin

	// CellMaxHeartDistance is the outer annulus radius for cell centers
	CellMaxHeartDistance = PlacementRadius - CellRadius

	// MaxCells caps placed immune cells
	MaxCells = 20

	// KillScore is awarded per virus destroyed by a cell
	KillScore = 10
)

// Energy
const (
	// EnergyMax is the starting and maximum player energy
	EnergyMax = 100

	// EnergyRegenAmount is granted every EnergyRegenInterval seconds
	EnergyRegenAmount = 5

	// EnergyRegenInterval is the regen period in seconds
	EnergyRegenInterval = 10.0

	// PlacementCost is the energy spent per placed cell
	PlacementCost = 5
)

// Boost pickups and medicine
const (
	// PickupRadius is the touch radius of a boost pickup
	PickupRadius = 20.0

	// PickupMinDistance and PickupMaxDistance bound pickup spawn distance from the heart
	PickupMinDistance = 80.0
	PickupMaxDistance = PlacementRadius - 50

	// BoostSpeedMultiplier applies while any speed boost is active
	BoostSpeedMultiplier = 2.0

	// MedicineUses is the number of medicine card activations per game
	MedicineUses = 4

	// MedicineDuration is the length of a medicine boost in seconds
	MedicineDuration = 5.0
)

// PickupSchedule lists the game times (seconds) at which boost pickups appear
var PickupSchedule = [...]float64{30, 60, 90}

// Protector
const (
	// ProtectorStartX and ProtectorStartY place the protector at game start
	ProtectorStartX = 100.0
	ProtectorStartY = 100.0

	// ProtectorSize is the edge length of the protector hitbox
	ProtectorSize = 35.0

	// ProtectorMaxHealth is the protector's starting health
	ProtectorMaxHealth = 100

	// ProtectorDamage is the health lost per virus absorbed
	ProtectorDamage = 10

	// ProtectorMinDistance and ProtectorMaxDistance bound its distance from the heart
	ProtectorMinDistance = 60.0
	ProtectorMaxDistance = 380.0

	// ProtectorMoveStep is the distance moved per key press
	ProtectorMoveStep = 12.0

	// ProtectorTurnStep is the rotation per key press in degrees
	ProtectorTurnStep = 6.0

	// ProtectorClampIterations is the binary-search depth for sliding along the boundary
	ProtectorClampIterations = 8

	// ProtectorMinSlide is the smallest accepted slide step
	ProtectorMinSlide = 0.01

	// ProtectorFallStep is degrees per tick of the fall animation, up to 90
	ProtectorFallStep = 2.0
)

// Screen, camera and UI
const (
	// ScreenWidth and ScreenHeight are the logical screen size for click mapping
	ScreenWidth  = 1000.0
	ScreenHeight = 800.0

	// CameraX, CameraY, CameraZ is the default camera position looking at the origin
	CameraX = 0.0
	CameraY = 800.0
	CameraZ = 800.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	// CameraPanStep is the camera movement per arrow key in view mode
	CameraPanStep = 10.0

	// SafeAreaCenterX, SafeAreaCenterY and SafeAreaRadius bound accepted placement clicks
	SafeAreaCenterX = 500.0
	SafeAreaCenterY = 400.0
	SafeAreaRadius  = 280.0

	// SafeArea{Min,Max}{X,Y} are the rectangular screen bounds for placement clicks
	SafeAreaMinX = 200.0
	SafeAreaMaxX = 800.0
	SafeAreaMinY = 120.0
	SafeAreaMaxY = 680.0

	// MedicineCardX, MedicineCardY are the card center in bottom-left screen coordinates
	MedicineCardX      = 500.0
	MedicineCardY      = 750.0
	MedicineCardWidth  = 140.0
	MedicineCardHeight = 50.0

	// ClickMarkerDuration is how long a placement click marker is shown in seconds
	ClickMarkerDuration = 2.0

	// FeedbackDuration is how long placement feedback text is shown in seconds
	FeedbackDuration = 2.0
)
