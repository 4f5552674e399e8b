// Package render draws Board snapshots to a tcell screen. It is a
// read-only consumer of engine state and never feeds back into it.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termtris/constants"
	"github.com/lixenwraith/termtris/engine"
	"github.com/lixenwraith/termtris/score"
)

// Well placement on screen. Each grid cell renders two columns wide
// so blocks look square in a terminal font.
const (
	wellX     = 2
	wellY     = 1
	cellWidth = 2
	panelGap  = 4
)

// shapeColors maps shape identity to the conventional block colors
var shapeColors = [8]tcell.Color{
	engine.ShapeI: tcell.ColorAqua,
	engine.ShapeO: tcell.ColorYellow,
	engine.ShapeT: tcell.ColorPurple,
	engine.ShapeS: tcell.ColorGreen,
	engine.ShapeZ: tcell.ColorRed,
	engine.ShapeJ: tcell.ColorBlue,
	engine.ShapeL: tcell.ColorOrange,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws the well, the piece and the side panel
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer for the screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame from a board snapshot
func (r *Renderer) Draw(snap engine.Snapshot, elapsed time.Duration, scores *score.Table) {
	r.screen.Clear()

	r.drawWellBorder()
	r.drawStack(snap)
	if snap.HasGhost && snap.Ghost.Row != snap.Active.Row {
		r.drawPiece(snap.Ghost, true)
	}
	if snap.HasActive {
		r.drawPiece(snap.Active, false)
	}
	r.drawPanel(snap, elapsed)

	switch {
	case snap.Over:
		r.drawGameOver(snap, scores)
	case snap.Paused:
		r.drawCentered("PAUSED", alertStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawWellBorder() {
	innerW := constants.GridWidth * cellWidth
	top := wellY - 1
	bottom := wellY + constants.GridHeight
	left := wellX - 1
	right := wellX + innerW

	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, borderStyle)
	r.screen.SetContent(right, top, '┐', nil, borderStyle)
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

// drawBlock fills one grid cell with a block glyph
func (r *Renderer) drawBlock(row, col int, glyph rune, style tcell.Style) {
	if row < 0 || row >= constants.GridHeight {
		return
	}
	x := wellX + col*cellWidth
	y := wellY + row
	r.screen.SetContent(x, y, glyph, nil, style)
	r.screen.SetContent(x+1, y, glyph, nil, style)
}

func (r *Renderer) drawStack(snap engine.Snapshot) {
	for row := 0; row < constants.GridHeight; row++ {
		for col := 0; col < constants.GridWidth; col++ {
			if s := snap.Cells[row][col]; s != engine.ShapeNone {
				style := tcell.StyleDefault.Foreground(shapeColors[s])
				r.drawBlock(row, col, '█', style)
			}
		}
	}
}

// drawPiece renders the active piece, or its landing ghost in a
// hollow dim style
func (r *Renderer) drawPiece(p engine.Piece, ghost bool) {
	style := tcell.StyleDefault.Foreground(shapeColors[p.Shape])
	glyph := '█'
	if ghost {
		style = style.Dim(true)
		glyph = '░'
	}
	for _, c := range p.Cells() {
		r.drawBlock(c.Row, c.Col, glyph, style)
	}
}

func (r *Renderer) drawPanel(snap engine.Snapshot, elapsed time.Duration) {
	x := wellX + constants.GridWidth*cellWidth + panelGap
	y := wellY

	r.drawText(x, y, "NEXT", titleStyle)
	r.drawPreview(x, y+1, snap.Next)

	y += 7
	r.drawText(x, y, "SCORE", titleStyle)
	r.drawText(x, y+1, score.FormatScore(snap.Score), textStyle)
	r.drawText(x, y+3, "LEVEL", titleStyle)
	r.drawText(x, y+4, fmt.Sprintf("%d", snap.Level), textStyle)
	r.drawText(x, y+6, "LINES", titleStyle)
	r.drawText(x, y+7, fmt.Sprintf("%d", snap.Lines), textStyle)
	r.drawText(x, y+9, "TIME", titleStyle)
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60
	r.drawText(x, y+10, fmt.Sprintf("%02d:%02d", minutes, seconds), textStyle)

	y += 13
	for i, line := range []string{
		"←/→ move   ↑ rotate",
		"↓ soft     ␣ hard",
		"p pause    m mute",
		"r restart  q quit",
	} {
		r.drawText(x, y+i, line, dimStyle)
	}
}

// drawPreview renders the next shape at its spawn rotation inside a
// small box beside the well
func (r *Renderer) drawPreview(x, y int, s engine.Shape) {
	style := tcell.StyleDefault.Foreground(shapeColors[s])
	p := engine.Piece{Shape: s}
	for _, c := range p.Cells() {
		px := x + c.Col*cellWidth
		py := y + c.Row + 1
		r.screen.SetContent(px, py, '█', nil, style)
		r.screen.SetContent(px+1, py, '█', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawCentered overlays a message in the middle of the well
func (r *Renderer) drawCentered(text string, style tcell.Style) {
	x := wellX + (constants.GridWidth*cellWidth-len(text))/2
	y := wellY + constants.GridHeight/2
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawGameOver(snap engine.Snapshot, scores *score.Table) {
	y := wellY + 3
	r.drawBanner(y, " GAME OVER ", alertStyle)
	r.drawBanner(y+1, fmt.Sprintf(" Score %s ", score.FormatScore(snap.Score)), textStyle)

	if scores != nil && len(scores.Entries()) > 0 {
		r.drawBanner(y+3, " BEST ", titleStyle)
		for i, e := range scores.Entries() {
			if i >= 5 {
				break
			}
			r.drawBanner(y+4+i, fmt.Sprintf(" %2d. %8s ", i+1, score.FormatScore(e.Score)), textStyle)
		}
	}
	r.drawBanner(wellY+constants.GridHeight-2, " r restart / q quit ", dimStyle)
}

// drawBanner centers one opaque line over the well
func (r *Renderer) drawBanner(y int, text string, style tcell.Style) {
	x := wellX + (constants.GridWidth*cellWidth-len(text))/2
	r.drawText(x, y, text, style.Background(tcell.ColorBlack))
}
