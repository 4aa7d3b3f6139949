package constants

// Navigation and Button Layout (cells)
const (
	ButtonWidth  = 10
	ButtonHeight = 3
	ButtonMargin = 1

	// RetryButtonWidth is the width of the retry button on terminal screens
	RetryButtonWidth = 12

	// StartButtonWidth is the width of the start screen button
	StartButtonWidth = 16
)

// Chore Progress Bar (cells)
const (
	ProgressBarWidth = 10
	ProgressBarGap   = 1
)

// Screen Text
const (
	GameTitle = "Demon Diapers"

	TaskBannerActive    = "Current Task: "
	TaskBannerCompleted = "Task Completed!"
	TaskBannerIdle      = "Nothing to do :("

	GameOverTitle      = "GAME OVER"
	GameOverBabyText   = "the baby has died"
	GameOverChoreText  = "task incomplete"
	VictoryTitle       = "WINNER!"
	RetryButtonLabel   = "Retry"
	StartButtonLabel   = "Start Game"
	NavLeftButtonLabel = "Left"
	NavRightLabel      = "Right"
)

// StartInstructions is shown on the start screen
var StartInstructions = []string{
	"Keep the baby safe and the house clean",
	"The baby is VERY fragile",
	"Click to interact with the environment",
	"Use arrow keys or buttons to move between rooms",
	"Press ESC to exit the game",
	"",
	"Good luck!",
}
