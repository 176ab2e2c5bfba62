package game

// Input is the discrete key state for one frame. The machine never polls
// devices itself; the presentation layer fills this in once per update.
type Input struct {
	// Left/Right are held states driving horizontal movement.
	Left  bool
	Right bool
	// Jump is true only on the frame the jump key was pressed.
	Jump bool
	// Confirm advances menus; Cancel backs out of play.
	Confirm bool
	Cancel  bool
	// SelectLevel is the 1-based level pick on the select screen, 0 if none.
	SelectLevel int
}
