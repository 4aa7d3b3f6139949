package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/demon-diapers/constants"
	"github.com/lixenwraith/demon-diapers/engine"
)

const (
	hazardRune      = '█'
	choreRune       = '▒'
	progressFill    = '█'
	progressEmpty   = '░'
	overlayPadding  = 2
	overlayMinWidth = 30
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	art    *ArtSet
}

// NewTerminalRenderer creates a new terminal renderer; art may be nil
func NewTerminalRenderer(screen tcell.Screen, art *ArtSet) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, art: art}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, layout *engine.Layout) {
	r.screen.Clear()

	haunted := snap.Haunted[snap.Room]
	base := tcell.StyleDefault.Background(BackgroundFor(snap.Room, haunted))

	r.fill(0, 0, layout.Width, layout.Height, base)
	r.drawArt(r.backgroundArt(snap, haunted), snap.Room, haunted, layout, base)
	r.drawHeader(snap, layout, base)

	if snap.Chore.Visible {
		r.drawChore(snap.Chore, base)
	}
	if snap.Hazard.Visible {
		r.drawDisk(snap.Hazard.Position, snap.Hazard.Radius, hazardRune, base.Foreground(RgbHazard))
	}

	if snap.Terminal.IsOver() {
		r.drawOverlay(snap, layout)
	} else {
		r.drawButton(layout.NavLeft, constants.NavLeftButtonLabel, snap.CanGoLeft)
		r.drawButton(layout.NavRight, constants.NavRightLabel, snap.CanGoRight)
	}

	r.screen.Show()
}

// RenderStartScreen draws the title, instructions and the start button
func (r *TerminalRenderer) RenderStartScreen(layout *engine.Layout) {
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(RgbStartBg)
	r.fill(0, 0, layout.Width, layout.Height, bg)

	top := layout.Start.Y - len(constants.StartInstructions) - 3
	if top < 0 {
		top = 0
	}
	r.drawCentered(layout.Width, top, constants.GameTitle, bg.Foreground(RgbStartTitle).Bold(true))
	for i, line := range constants.StartInstructions {
		r.drawCentered(layout.Width, top+2+i, line, bg.Foreground(RgbStartText))
	}

	r.drawButton(layout.Start, constants.StartButtonLabel, true)
	r.screen.Show()
}

func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawCentered(width, y int, text string, style tcell.Style) {
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

// backgroundArt picks the chore scene while the chore is Active in the viewed room,
// otherwise the room art
func (r *TerminalRenderer) backgroundArt(snap engine.Snapshot, haunted bool) []string {
	if snap.Chore.State == engine.Active && snap.Chore.Room == snap.Room {
		return r.art.SceneLines(snap.Room, snap.Chore.Name, haunted)
	}
	return r.art.Lines(snap.Room, haunted)
}

// drawArt centers the art in the field above the navigation strip; spaces stay transparent
func (r *TerminalRenderer) drawArt(lines []string, room engine.Room, haunted bool, layout *engine.Layout, base tcell.Style) {
	if len(lines) == 0 {
		return
	}

	fieldH := layout.Height - layout.ReservedBottom
	artW := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > artW {
			artW = n
		}
	}
	offX := (layout.Width - artW) / 2
	offY := (fieldH - len(lines)) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	style := base.Foreground(ArtColorFor(room, haunted))
	for row, l := range lines {
		y := offY + row
		if y >= fieldH {
			break
		}
		for col, ch := range []rune(l) {
			x := offX + col
			if x >= layout.Width {
				break
			}
			if ch != ' ' {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

// drawHeader writes the room name and countdown top-left and the task banner top-right
func (r *TerminalRenderer) drawHeader(snap engine.Snapshot, layout *engine.Layout, base tcell.Style) {
	label := base.Foreground(RgbBannerText).Background(RgbBannerBg)

	left := fmt.Sprintf(" %s  %3ds ", snap.Room, int(math.Ceil(snap.Remaining.Seconds())))
	r.drawText(0, 0, left, label)

	banner := " " + TaskBanner(snap.Chore) + " "
	x := layout.Width - len([]rune(banner))
	if x < len([]rune(left)) {
		x = len([]rune(left))
	}
	r.drawText(x, 0, banner, label)
}

// TaskBanner is the top-right chore text for a chore view
func TaskBanner(c engine.ChoreView) string {
	switch c.State {
	case engine.Active:
		return constants.TaskBannerActive + c.Name
	case engine.Resolved:
		return constants.TaskBannerCompleted
	default:
		return constants.TaskBannerIdle
	}
}

// drawChore draws the chore marker and its progress bar above it
func (r *TerminalRenderer) drawChore(c engine.ChoreView, base tcell.Style) {
	r.drawDisk(c.Position, c.Radius, choreRune, base.Foreground(RgbChore))

	cx, cy := c.Position.Cell()
	barY := cy - int(math.Ceil(c.Radius)) - constants.ProgressBarGap - 1
	if barY < 1 {
		barY = 1
	}
	barX := cx - constants.ProgressBarWidth/2

	filled := int(math.Round(c.Progress * constants.ProgressBarWidth))
	for i := 0; i < constants.ProgressBarWidth; i++ {
		if i < filled {
			r.screen.SetContent(barX+i, barY, progressFill, nil, base.Foreground(RgbProgressFill))
		} else {
			r.screen.SetContent(barX+i, barY, progressEmpty, nil, base.Foreground(RgbProgressEmpty))
		}
	}
}

// drawDisk fills every cell whose center is within radius of p, the same metric as hit testing
func (r *TerminalRenderer) drawDisk(p engine.Point, radius float64, ch rune, style tcell.Style) {
	reach := int(math.Ceil(radius))
	cx, cy := p.Cell()
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if math.Hypot(float64(dx), float64(dy)) <= radius {
				r.screen.SetContent(cx+dx, cy+dy, ch, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawButton(rect engine.Rect, label string, enabled bool) {
	style := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonText)
	if !enabled {
		style = tcell.StyleDefault.Background(RgbButtonDisabled).Foreground(RgbButtonBg)
	}
	r.fill(rect.X, rect.Y, rect.W, rect.H, style)

	cx, cy := rect.Center()
	x := cx - len([]rune(label))/2
	if x < rect.X {
		x = rect.X
	}
	r.drawText(x, cy, label, style)
}

// drawOverlay draws the end-of-match box and the retry button
func (r *TerminalRenderer) drawOverlay(snap engine.Snapshot, layout *engine.Layout) {
	title, titleColor := constants.VictoryTitle, RgbVictoryTitle
	var subtitle string
	switch snap.Terminal {
	case engine.GameOverBaby:
		title, titleColor, subtitle = constants.GameOverTitle, RgbGameOverTitle, constants.GameOverBabyText
	case engine.GameOverChore:
		title, titleColor, subtitle = constants.GameOverTitle, RgbGameOverTitle, constants.GameOverChoreText
	}
	stats := fmt.Sprintf("%d hazards cleared, %d chores done", snap.HazardsCleared, snap.ChoresCompleted)

	lines := []string{title}
	if subtitle != "" {
		lines = append(lines, subtitle)
	}
	lines = append(lines, stats)

	boxW := overlayMinWidth
	for _, l := range lines {
		if n := len([]rune(l)) + 2*overlayPadding; n > boxW {
			boxW = n
		}
	}
	if boxW > layout.Width {
		boxW = layout.Width
	}
	boxH := len(lines)*2 + 1
	boxX := (layout.Width - boxW) / 2
	boxY := layout.Retry.Y - boxH - 1
	if boxY < 0 {
		boxY = 0
	}

	bg := tcell.StyleDefault.Background(RgbOverlayBg)
	r.fill(boxX, boxY, boxW, boxH, bg)
	for i, l := range lines {
		style := bg.Foreground(RgbOverlayText)
		if i == 0 {
			style = bg.Foreground(titleColor).Bold(true)
		}
		r.drawCentered(layout.Width, boxY+1+2*i, l, style)
	}

	r.drawButton(layout.Retry, constants.RetryButtonLabel, true)
}
