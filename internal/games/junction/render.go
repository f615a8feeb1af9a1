package junction

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/paths"
)

// Layout
const (
	hudHeight    = 1
	footerHeight = 1
	minScreenW   = 40
	minScreenH   = 14
)

// viewport maps world pixels onto the map area of the screen.
type viewport struct {
	offX, offY int
	w, h       int
	sx, sy     float64 // Cells per world pixel
}

func newViewport(screenW, screenH int, world config.WorldConfig) viewport {
	mapH := screenH - hudHeight - footerHeight
	// Terminal cells are roughly twice as tall as they are wide
	mapW := min(screenW, mapH*2)
	return viewport{
		offX: (screenW - mapW) / 2,
		offY: hudHeight,
		w:    mapW,
		h:    mapH,
		sx:   float64(mapW) / world.Width,
		sy:   float64(mapH) / world.Height,
	}
}

func (vp viewport) cellX(x float64) int { return vp.offX + int(math.Floor(x*vp.sx)) }
func (vp viewport) cellY(y float64) int { return vp.offY + int(math.Floor(y*vp.sy)) }

// worldX returns the world x at the centre of a cell column.
func (vp viewport) worldX(cx int) float64 { return (float64(cx-vp.offX) + 0.5) / vp.sx }
func (vp viewport) worldY(cy int) float64 { return (float64(cy-vp.offY) + 0.5) / vp.sy }

// cellRect returns the cells covered by a world box, at least one cell.
func (vp viewport) cellRect(b core.Box) core.Rect {
	x0, y0 := vp.cellX(b.Left), vp.cellY(b.Top)
	x1 := vp.offX + int(math.Ceil(b.Right*vp.sx)) - 1
	y1 := vp.offY + int(math.Ceil(b.Bottom*vp.sy)) - 1
	return core.NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

func (vp viewport) contains(x, y int) bool {
	return x >= vp.offX && x < vp.offX+vp.w && y >= vp.offY && y < vp.offY+vp.h
}

// set draws a cell only inside the map area.
func (vp viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if vp.contains(x, y) {
		dst.SetColor(x, y, r, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Window too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.score == nil {
		return
	}

	vp := newViewport(w, h, g.cfg.World)
	now := g.Now()

	g.drawRoads(dst, vp)
	g.drawStopLines(dst, vp)
	g.drawVehicles(dst, vp, now)
	g.drawHUD(dst, vp, now)
	g.drawFooter(dst)

	switch {
	case g.gameOver:
		drawMessageBox(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Final score: %d", g.score.Score()),
			fmt.Sprintf("%q", g.quip),
			"",
			"R restart  |  B menu")
	case !g.started:
		drawMessageBox(dst, core.ColorBrightYellow,
			g.Title(),
			"",
			"Flip the lights, keep traffic moving.",
			"Every car through scores; quick exits build a streak.",
			fmt.Sprintf("A crash costs %d points. Below zero, it's over.", g.cfg.Crash.Penalty),
			"",
			"Press Enter to start")
	case g.paused:
		drawMessageBox(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	case now < g.holdUntil:
		drawMessageBox(dst, core.ColorBrightMagenta, "noice", fmt.Sprintf("%d points", g.score.Score()))
	}
}

func (g *Game) drawRoads(dst *core.Screen, vp viewport) {
	in := g.cfg.World.Intersection
	midX := (in.Left + in.Right) / 2
	midY := (in.Top + in.Bottom) / 2
	markX, markY := vp.cellX(midX), vp.cellY(midY)

	for cy := vp.offY; cy < vp.offY+vp.h; cy++ {
		wy := vp.worldY(cy)
		horiz := wy >= in.Top && wy < in.Bottom
		for cx := vp.offX; cx < vp.offX+vp.w; cx++ {
			wx := vp.worldX(cx)
			vert := wx >= in.Left && wx < in.Right

			switch {
			case horiz && vert:
				dst.SetColor(cx, cy, JunctionChar, core.ColorGray)
			case horiz && cy == markY && cx%2 == 0:
				dst.SetColor(cx, cy, LaneMarkH, core.ColorYellow)
			case vert && cx == markX && cy%2 == 0:
				dst.SetColor(cx, cy, LaneMarkV, core.ColorYellow)
			case horiz || vert:
				dst.SetColor(cx, cy, RoadChar, core.ColorDarkGray)
			}
		}
	}
}

// drawStopLines draws each lane's stop line at the front bumper of a vehicle
// waiting there, with the observed light beside it on the kerb side.
func (g *Game) drawStopLines(dst *core.Screen, vp viewport) {
	in := g.cfg.World.Intersection
	vc := g.cfg.Vehicle

	for _, lane := range g.table.LaneList() {
		route, _ := g.table.Route(lane)
		if len(route.Paths) == 0 {
			continue
		}
		p := route.Paths[0]
		axis := p.AxisAt(0)
		stop := p.StopCoord()

		along, across := vc.Width, vc.Height
		perp := p.Stop.Y
		if axis == paths.AxisY {
			along, across = vc.Height, vc.Width
			perp = p.Stop.X
		}
		line := stop
		if p.TravelSign(0) > 0 {
			line += along
		}

		light := ObservedLight(lane)
		label := lightLabel(light)
		lightColor := signalColor(g.lights.State(light))

		if axis == paths.AxisX {
			x := vp.cellX(line)
			y0, y1 := vp.cellY(perp), vp.cellY(perp+across-1)
			for y := y0; y <= y1; y++ {
				vp.set(dst, x, y, StopLineChar, core.ColorBrightWhite)
			}
			ly := y0 - 1
			if perp >= (in.Top+in.Bottom)/2 {
				ly = y1 + 1
			}
			vp.set(dst, x-1, ly, label, core.ColorBrightWhite)
			vp.set(dst, x, ly, LightChar, lightColor)
			continue
		}

		y := vp.cellY(line)
		x0, x1 := vp.cellX(perp), vp.cellX(perp+across-1)
		for x := x0; x <= x1; x++ {
			vp.set(dst, x, y, StopLineCharH, core.ColorBrightWhite)
		}
		lx := x0 - 2
		if perp >= (in.Left+in.Right)/2 {
			lx = x1 + 1
		}
		vp.set(dst, lx, y, label, core.ColorBrightWhite)
		vp.set(dst, lx+1, y, LightChar, lightColor)
	}
}

func (g *Game) drawVehicles(dst *core.Screen, vp viewport, now float64) {
	vc := g.cfg.Vehicle
	visible := g.crash.Visible(now)

	for _, v := range g.traffic.Vehicles() {
		r := vp.cellRect(v.Box(vc.Width, vc.Height))

		ch, col := VehicleChar, v.Color
		switch {
		case v.Crashed && !visible:
			ch, col = VehicleDimChar, core.ColorDarkGray
		case v.Crashed:
			col = core.ColorBrightRed
		case now-v.SpawnedAt < float64(vc.FadeInMs):
			ch = VehicleFadeChar
		}

		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				vp.set(dst, x, y, ch, col)
			}
		}

		head := arrowFor(v.Rotation)
		if v.Crashed {
			head = 'X'
		}
		vp.set(dst, r.X+r.W/2, r.Y+r.H/2, head, core.ColorBrightWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen, vp viewport, now float64) {
	x := 1
	x = drawSegment(dst, x, 0, strings.ToUpper(g.Title()), core.ColorBrightYellow)
	x = drawSegment(dst, x+2, 0, fmt.Sprintf("Score: %d", g.score.Score()), core.ColorBrightWhite)
	if s := g.score.Streak(); s > 1 {
		x = drawSegment(dst, x+2, 0, fmt.Sprintf("x%d streak!", s), core.ColorBrightCyan)
	}
	if b := g.score.Bonus(now); b > 0 {
		drawSegment(dst, x+2, 0, fmt.Sprintf("+%d BONUS!", b), core.ColorBrightGreen)
	}

	// Light states, right-aligned
	lx := dst.Width() - len(paths.AllLanes)*3
	for _, l := range []paths.Lane{paths.North, paths.South, paths.East, paths.West} {
		dst.SetColor(lx, 0, lightLabel(l), core.ColorBrightWhite)
		dst.SetColor(lx+1, 0, LightChar, signalColor(g.lights.State(l)))
		lx += 3
	}

	switch g.crash.Phase() {
	case PhaseFrozen, PhaseFlickering:
		dst.DrawTextCenteredColor(vp.offY, fmt.Sprintf(" CRASH! -%d ", g.cfg.Crash.Penalty), core.ColorBrightRed)
	case PhaseRecovering:
		dst.DrawTextCenteredColor(vp.offY, recoveryBar(g.crash.RecoveryProgress(now)), core.ColorOrange)
	}
}

func (g *Game) drawFooter(dst *core.Screen) {
	hint := "arrows/NSEW lights  Tab all  P pause  B menu  Q quit"
	dst.DrawTextCenteredColor(dst.Height()-1, hint, core.ColorGray)
}

// drawSegment writes text at x and returns the column after it.
func drawSegment(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColor(x, y, text, c)
	return x + utf8.RuneCountInString(text)
}

// drawMessageBox draws a framed message in the center of the screen.
func drawMessageBox(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawFrame(box, c)

	for i, l := range lines {
		lc := core.ColorWhite
		if i == 0 {
			lc = c
		}
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawTextColor(x, boxY+1+i, l, lc)
	}
}

func recoveryBar(progress float64) string {
	const width = 10
	filled := int(progress * width)
	return " recovering " + strings.Repeat("■", filled) + strings.Repeat("·", width-filled) + " "
}

// lightLabel returns the key letter of a light.
func lightLabel(l paths.Lane) rune {
	return unicode.ToUpper(rune(l.String()[0]))
}

func signalColor(s Signal) core.Color {
	if s == Green {
		return core.ColorBrightGreen
	}
	return core.ColorBrightRed
}

// arrowFor returns the glyph pointing along a heading in degrees.
func arrowFor(deg float64) rune {
	rad := deg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return ArrowRight
		}
		return ArrowLeft
	}
	if dy > 0 {
		return ArrowDown
	}
	return ArrowUp
}
