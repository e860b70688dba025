package render

// Shared palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbStatusText = RGB{0, 0, 0}
	RgbHudText    = RGB{255, 255, 255}
	RgbHudDim     = RGB{150, 150, 160}
	RgbWarning    = RGB{255, 80, 80}
	RgbSuccess    = RGB{80, 220, 120}
	RgbBanner     = RGB{255, 215, 0}
)

// Defense colors
var (
	RgbHeart          = RGB{230, 40, 60}
	RgbZone           = RGB{60, 70, 90}
	RgbCell           = RGB{200, 230, 255}
	RgbCellInactive   = RGB{110, 120, 140}
	RgbCellBoosted    = RGB{255, 255, 120}
	RgbPickup         = RGB{0, 220, 220}
	RgbProtector      = RGB{100, 150, 255}
	RgbProtectorFall  = RGB{120, 120, 120}
	RgbMarker         = RGB{255, 165, 0}
	RgbMedicineCard   = RGB{144, 238, 144}
	RgbMedicineActive = RGB{255, 192, 203}
	RgbEnergyBg       = RGB{255, 255, 255}
	RgbBoostBg        = RGB{255, 192, 203}
	RgbWaveBg         = RGB{135, 206, 250}
	RgbHealthBg       = RGB{200, 50, 50}

	// RgbVirusCorner colors viruses by the corner they spawned from
	RgbVirusCorner = [...]RGB{
		{120, 220, 60},
		{190, 90, 220},
		{240, 140, 40},
		{60, 200, 170},
	}
)

// Shooter colors
var (
	RgbArenaEdge   = RGB{90, 90, 110}
	RgbPlayer      = RGB{255, 255, 255}
	RgbPlayerCheat = RGB{255, 215, 0}
	RgbAim         = RGB{180, 180, 180}
	RgbEnemy       = RGB{255, 80, 80}
	RgbEnemyPulse  = RGB{255, 160, 160}
	RgbBullet      = RGB{255, 255, 0}
)

// Catcher colors
var (
	RgbPaddle        = RGB{255, 255, 255}
	RgbPaddleOver    = RGB{255, 0, 0}
	RgbRestartButton = RGB{0, 204, 204}
	RgbPauseButton   = RGB{255, 153, 0}
	RgbQuitButton    = RGB{255, 0, 0}
)
