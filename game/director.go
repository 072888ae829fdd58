package game

// Director plays the game instead of a person. It is consulted once per tick
// while a game is being played.
type Director interface {
	// Start is called whenever a new game begins
	Start(view View)

	// Act returns the next action to perform, if the director has one
	Act(view View) (Event, bool)
}
