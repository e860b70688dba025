package constants

// Shooter arena and player
const (
	// ShooterScreenWidth and ShooterScreenHeight are the window size in pixels
	ShooterScreenWidth  = 1000.0
	ShooterScreenHeight = 800.0

	// ShooterGrid is the half extent of the shooter arena
	ShooterGrid = 600.0

	// ShooterPlayerClamp bounds player movement on each axis
	ShooterPlayerClamp = ShooterGrid - 75

	// ShooterPlayerLife is the starting life count
	ShooterPlayerLife = 5

	// ShooterPlayerStep is the distance moved per key press
	ShooterPlayerStep = 30.0

	// ShooterTurnStep is the rotation per key press in degrees
	ShooterTurnStep = 20.0

	// ShooterPlayerBox is the player hitbox edge
	ShooterPlayerBox = 50.0
)

// Shooter bullets
const (
	// BulletSpeed is the distance a bullet travels per tick
	BulletSpeed = 0.5

	// BulletMuzzle is how far ahead of the player bullets appear
	BulletMuzzle = 60.0

	// BulletHeight is the vertical offset of a fired bullet
	BulletHeight = 50.0

	// BulletBox is the bullet hitbox edge
	BulletBox = 10.0

	// MaxMisses ends the game once this many bullets leave the arena
	MaxMisses = 10
)

// Shooter enemies
const (
	// EnemyCount is the constant enemy population
	EnemyCount = 5

	// EnemySpeed is the distance an enemy closes per tick
	EnemySpeed = 0.08

	// EnemyStopDistance halts enemies this close to the player
	EnemyStopDistance = 30.0

	// EnemyBox is the enemy hitbox edge
	EnemyBox = 100.0

	// EnemySpawnMargin keeps respawns inside the arena edge
	EnemySpawnMargin = 50.0

	// EnemyPulseStep advances the pulse animation per enemy per tick
	EnemyPulseStep = 0.05
)

// Shooter assist and camera
const (
	// CheatTurnStep is the auto-rotation per tick in cheat mode (degrees)
	CheatTurnStep = 5.0

	// CheatFireCone fires when an enemy is within this many degrees of aim
	CheatFireCone = 10.0

	// ShooterCameraDistance is the default orbit distance
	ShooterCameraDistance = 500.0

	// ShooterCameraHeight is the default camera height
	ShooterCameraHeight = 500.0

	// ShooterCameraMinHeight floors the camera height
	ShooterCameraMinHeight = 100.0

	// ShooterCameraRaise and ShooterCameraOrbit are per-key camera steps
	ShooterCameraRaise = 20.0
	ShooterCameraOrbit = 5.0
)
