package constants

// Catcher arena
const (
	// CatcherWidth and CatcherHeight are the playfield size
	CatcherWidth  = 800.0
	CatcherHeight = 600.0

	// DiamondSize is the half diagonal of a falling diamond
	DiamondSize = 15.0

	// DiamondSpawnY is the height new diamonds appear at
	DiamondSpawnY = CatcherHeight - 100

	// DiamondSpawnMargin keeps spawns away from the side walls
	DiamondSpawnMargin = 50

	// DiamondBaseSpeed is the starting fall speed in units per second
	DiamondBaseSpeed = 100.0

	// DiamondSpeedStep is added after every catch
	DiamondSpeedStep = 20.0

	// DiamondFloor ends the game once a diamond falls below it
	DiamondFloor = 20.0
)

// Catcher paddle
const (
	// PaddleWidth and PaddleHeight give the paddle hitbox
	PaddleWidth  = 90.0
	PaddleHeight = 15.0

	// PaddleY is the paddle's bottom edge
	PaddleY = 40.0

	// PaddleStep is the distance moved per arrow key
	PaddleStep = 30.0

	// PaddleInset is the slanted inset of the paddle outline
	PaddleInset = 15.0
)

// Catcher buttons, centers in bottom-left coordinates
const (
	ButtonSize     = 40.0
	ButtonY        = CatcherHeight - 60
	RestartButtonX = 80.0
	PauseButtonX   = CatcherWidth / 2
	QuitButtonX    = CatcherWidth - 80
)
