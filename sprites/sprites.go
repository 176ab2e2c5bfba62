// Package sprites holds the literal pixel bitmaps for every drawable
// entity. Cell values are palette roles, not shades: 0 is transparent and
// each entity's draw code decides which shade 1 and 2 map to.
package sprites

// Player walking frames, 8x8. Frame 0 doubles as the airborne pose.
var PlayerFrames = [2][8][8]uint8{
	{
		{0, 0, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 2, 2, 2, 1, 0, 0},
		{0, 2, 2, 2, 2, 2, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0},
	},
	{
		{0, 0, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 2, 2, 2, 1, 0, 0},
		{0, 2, 2, 2, 2, 2, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 0, 1, 0, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0},
	},
}

// PlayerDeath is the upside-down pose shown during the death spin.
var PlayerDeath = [8][8]uint8{
	{0, 1, 0, 0, 0, 1, 0, 0},
	{0, 1, 0, 0, 0, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 1, 0, 0, 0},
	{0, 2, 2, 2, 2, 2, 0, 0},
	{0, 1, 2, 2, 2, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 1, 0, 0, 0},
}

// GroundEnemyFrames: a stubby walker; the second frame only swaps the feet.
var GroundEnemyFrames = [2][8][8]uint8{
	{
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 0, 1, 1, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 0, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 0, 0, 1, 1},
	},
	{
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 0, 1, 1, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 0, 0, 0, 0, 1, 0},
		{1, 0, 1, 0, 0, 1, 0, 1},
	},
}

// FlyingEnemyFrames: a bat; the second frame lifts the wings.
var FlyingEnemyFrames = [2][8][8]uint8{
	{
		{0, 1, 0, 0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 1, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 1, 1, 1, 1, 0, 1},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
	},
	{
		{0, 1, 0, 0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 1, 0, 0},
		{1, 0, 1, 1, 1, 1, 0, 1},
		{1, 0, 1, 1, 1, 1, 0, 1},
		{1, 1, 1, 0, 0, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
	},
}

// CoinFrames: frame 0 face-on, frame 1 edge-on mid spin.
var CoinFrames = [2][8][8]uint8{
	{
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
	},
	{
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 0, 0},
	},
}

// PlatformTile is the repeating 8x8 block pattern. 1 draws dark, 0 light.
var PlatformTile = [8][8]uint8{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 1, 0, 1},
	{1, 0, 1, 0, 0, 1, 0, 1},
	{1, 0, 1, 0, 0, 1, 0, 1},
	{1, 0, 1, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

// GoalFlag is the 8x5 banner waved at the top of the goal pole.
var GoalFlag = [5][8]uint8{
	{1, 1, 1, 1, 1, 1, 1, 0},
	{1, 0, 0, 0, 0, 0, 1, 0},
	{1, 0, 0, 0, 0, 0, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}
