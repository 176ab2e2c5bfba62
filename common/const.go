package common

// Logical screen dimensions. Every world coordinate is expressed in these
// pixels; presentation scales them up by an integer factor.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
	TileSize     = 8
)

// Physics and camera tuning.
const (
	Gravity         = 0.3
	PlayerSpeed     = 1.5
	JumpStrength    = 4.5
	ScrollThreshold = ScreenWidth / 3
)

// LevelCount is the number of procedurally built stages.
const LevelCount = 5
