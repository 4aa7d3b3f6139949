package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/demon-diapers/engine"
)

// RoomPalette holds the colors of one room in its normal and haunted look
type RoomPalette struct {
	Background tcell.Color
	Art        tcell.Color
	Haunted    tcell.Color
	HauntedArt tcell.Color
}

// roomPalettes is indexed by engine.Room
var roomPalettes = [engine.RoomCount]RoomPalette{
	engine.Bathroom: {
		Background: tcell.NewRGBColor(120, 30, 30),
		Art:        tcell.NewRGBColor(230, 180, 180),
		Haunted:    tcell.NewRGBColor(45, 5, 5),
		HauntedArt: tcell.NewRGBColor(170, 40, 40),
	},
	engine.Kitchen: {
		Background: tcell.NewRGBColor(30, 50, 120),
		Art:        tcell.NewRGBColor(180, 200, 240),
		Haunted:    tcell.NewRGBColor(8, 12, 45),
		HauntedArt: tcell.NewRGBColor(60, 80, 170),
	},
	engine.Bedroom: {
		Background: tcell.NewRGBColor(30, 100, 40),
		Art:        tcell.NewRGBColor(180, 230, 180),
		Haunted:    tcell.NewRGBColor(5, 35, 10),
		HauntedArt: tcell.NewRGBColor(60, 140, 60),
	},
	engine.LivingRoom: {
		Background: tcell.NewRGBColor(80, 30, 110),
		Art:        tcell.NewRGBColor(215, 180, 235),
		Haunted:    tcell.NewRGBColor(28, 5, 40),
		HauntedArt: tcell.NewRGBColor(120, 60, 160),
	},
}

var (
	RgbHazard        = tcell.NewRGBColor(255, 60, 60)   // Bright red disk
	RgbChore         = tcell.NewRGBColor(255, 220, 0)   // Yellow marker
	RgbProgressFill  = tcell.NewRGBColor(0, 220, 0)     // Green
	RgbProgressEmpty = tcell.NewRGBColor(60, 60, 60)    // Dark gray
	RgbBannerText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerBg      = tcell.NewRGBColor(0, 0, 0)       // Black

	RgbButtonBg       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbButtonText     = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbButtonDisabled = tcell.NewRGBColor(90, 90, 90)    // Dim gray

	RgbOverlayBg     = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbGameOverTitle = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbVictoryTitle  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbOverlayText   = tcell.NewRGBColor(200, 200, 200) // Light gray

	RgbStartBg    = tcell.NewRGBColor(10, 10, 10)    // Near black
	RgbStartTitle = tcell.NewRGBColor(255, 80, 80)   // Blood red
	RgbStartText  = tcell.NewRGBColor(255, 255, 255) // White
)

// PaletteFor returns the palette of a room, falling back to the first room
func PaletteFor(room engine.Room) RoomPalette {
	if !room.Valid() {
		room = engine.Bathroom
	}
	return roomPalettes[room]
}

// BackgroundFor returns the fill color of a room in its current look
func BackgroundFor(room engine.Room, haunted bool) tcell.Color {
	p := PaletteFor(room)
	if haunted {
		return p.Haunted
	}
	return p.Background
}

// ArtColorFor returns the art foreground of a room in its current look
func ArtColorFor(room engine.Room, haunted bool) tcell.Color {
	p := PaletteFor(room)
	if haunted {
		return p.HauntedArt
	}
	return p.Art
}
