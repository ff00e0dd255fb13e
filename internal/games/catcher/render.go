package catcher

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// Player sprites, one line per row. Rows beyond the sprite repeat the last line.
var (
	playerSprite      = []string{" ,---. ", "( o o )", " /|$|\\ ", "  / \\  "}
	playerSpriteTough = []string{" ,^^^. ", "( >_< )", "\\_|$|_/", "  / \\  "}
	dogSpriteRight    = []string{" _/o", "/ | "}
	dogSpriteLeft     = []string{"o\\_ ", " | \\"}
)

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()
	hud := g.cfg.Playfield.HUDRows

	g.renderHUD(dst, &snap)

	if snap.FieldW <= 0 || snap.FieldH <= 0 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	// Ground line
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), '▔')

	for i := range snap.Entities {
		g.renderEntity(dst, &snap.Entities[i], hud)
	}
	if snap.Companion.Placed {
		g.renderCompanion(dst, &snap.Companion, hud)
	}
	g.renderPlayer(dst, &snap, hud)

	switch {
	case snap.GameOver:
		g.renderGameOver(dst, &snap)
	case g.paused:
		g.renderBanner(dst, []string{"PAUSED", "", "P - resume   Q - quit"}, core.ColorBrightWhite)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(0, snap.MaxLives-snap.Lives))
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextColored(18, 0, hearts, core.ColorBrightRed)
	dst.DrawTextColored(20+snap.MaxLives, 0, fmt.Sprintf("Level: %d", snap.Level), core.ColorBrightCyan)

	x := 1
	for k := range StatusKindCount {
		st := snap.Statuses[k]
		if !st.Active || k == StatusHurtFlash {
			continue
		}
		label := fmt.Sprintf("%s %.1fs", k.Label(), st.Remaining/1000)
		dst.DrawTextColored(x, 1, label, statusColor(k))
		x += len([]rune(label)) + 2
	}

	// Notices are right-aligned, newest last
	nx := dst.Width() - 1
	for i := len(g.notices) - 1; i >= 0 && nx > x; i-- {
		text := g.notices[i].text
		nx -= len([]rune(text))
		if nx <= x {
			break
		}
		dst.DrawTextColored(nx, 1, text, g.notices[i].color)
		nx -= 2
	}
}

func statusColor(k StatusKind) core.Color {
	switch k {
	case StatusInvincibility, StatusDoublePoints:
		return core.ColorBrightYellow
	case StatusControlInversion:
		return core.ColorMagenta
	default:
		return core.ColorGray
	}
}

// cellRect maps a pixel box onto terminal cells below the HUD.
func (g *Game) cellRect(x, y, w, h float64, hud int) core.Rect {
	cw, ch := g.cfg.Playfield.CellWidth, g.cfg.Playfield.CellHeight
	left := int(math.Floor(x / cw))
	top := int(math.Floor(y / ch))
	right := int(math.Ceil((x + w) / cw))
	bottom := int(math.Ceil((y + h) / ch))
	return core.NewRect(left, top+hud, max(1, right-left), max(1, bottom-top))
}

func (g *Game) renderEntity(dst *core.Screen, e *EntityView, hud int) {
	if e.Y+e.H <= 0 {
		return
	}
	r := g.cellRect(e.X, e.Y, e.W, e.H, hud)
	if r.Y < hud {
		r.H -= hud - r.Y
		r.Y = hud
	}
	glyph, color := entityGlyph(e)
	dst.FillRect(r, glyph, color)
}

func entityGlyph(e *EntityView) (rune, core.Color) {
	switch e.Tag {
	case TagCollectible:
		switch e.Variant {
		case "bitcoin":
			return '₿', core.ColorOrange
		case "moneybag":
			return '§', core.ColorGreen
		default:
			return '$', core.ColorBrightGreen
		}
	case TagHazard:
		return '▓', core.ColorRed
	case TagPowerUp:
		if e.Variant == PowerUpDoublePoints.String() {
			return '×', core.ColorBrightYellow
		}
		return '★', core.ColorBrightYellow
	case TagLifeRestore:
		return '♥', core.ColorBrightRed
	case TagStatusModifier:
		return '¡', core.ColorBrightMagenta
	case TagGroundItem:
		return '●', core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

func (g *Game) renderCompanion(dst *core.Screen, c *ActorView, hud int) {
	r := g.cellRect(c.X, c.Y, c.W, c.H, hud)
	sprite := dogSpriteRight
	if c.Facing == DirLeft {
		sprite = dogSpriteLeft
	}
	drawSprite(dst, r, sprite, core.ColorWhite)
}

func (g *Game) renderPlayer(dst *core.Screen, snap *Snapshot, hud int) {
	p := &snap.Player
	r := g.cellRect(p.X, p.Y, p.W, p.H, hud)

	sprite := playerSprite
	color := core.ColorBrightBlue
	switch {
	case snap.Flags.Transformed:
		sprite = playerSpriteTough
		color = core.ColorBrightYellow
	case snap.Statuses[StatusHurtFlash].Active:
		color = core.ColorBrightRed
	case snap.Flags.Intoxicated:
		color = core.ColorMagenta
	}
	if snap.GameOver {
		color = core.ColorGray
	}

	// Shaking shifts the sprite by a cell every other tick
	if snap.Flags.Shaking && snap.Tick%2 == 1 {
		r.X++
	}
	if p.Facing == DirLeft && !snap.Flags.Transformed {
		sprite = mirror(sprite)
	}
	drawSprite(dst, r, sprite, color)
}

// drawSprite draws sprite lines centred in r, one line per row.
func drawSprite(dst *core.Screen, r core.Rect, sprite []string, color core.Color) {
	for row := 0; row < r.H; row++ {
		line := sprite[min(row, len(sprite)-1)]
		width := len([]rune(line))
		dst.DrawTextColored(r.X+(r.W-width)/2, r.Y+row, line, color)
	}
}

func mirror(sprite []string) []string {
	swap := map[rune]rune{'/': '\\', '\\': '/', '(': ')', ')': '(', '<': '>', '>': '<'}
	out := make([]string, len(sprite))
	for i, line := range sprite {
		runes := []rune(line)
		for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
			runes[l], runes[r] = runes[r], runes[l]
		}
		for j, c := range runes {
			if m, ok := swap[c]; ok {
				runes[j] = m
			}
		}
		out[i] = string(runes)
	}
	return out
}

func (g *Game) renderGameOver(dst *core.Screen, snap *Snapshot) {
	g.renderBanner(dst, []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final score: %d", snap.Score),
		fmt.Sprintf("Reached level %d", snap.Level),
		"",
		"R - play again   B - menu   Q - quit",
	}, core.ColorBrightRed)
}

func (g *Game) renderBanner(dst *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width)/2-2, (dst.Height()-len(lines))/2-1, width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		x := (dst.Width() - len([]rune(l))) / 2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
