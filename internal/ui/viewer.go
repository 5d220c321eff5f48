package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pokearena/internal/battle"
)

// Matchup describes the two sides of a battle for rendering: display
// names, max HP for the bars, and each side's color.
type Matchup struct {
	Names  [2]string
	MaxHP  [2]int
	Colors [2]tcell.Color
}

// Viewer plays back a completed battle log turn by turn.
type Viewer struct {
	screen *Screen
}

// NewViewer creates a viewer on a fresh terminal screen.
func NewViewer() (*Viewer, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return &Viewer{screen: screen}, nil
}

// Play steps through the battle's turn records. Left/right arrows move
// between turns; q or escape exits.
func (v *Viewer) Play(result *battle.Result, matchup Matchup) {
	defer v.screen.Close()

	turn := 0
	for {
		v.render(result, matchup, turn)

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyLeft:
				if turn > 0 {
					turn--
				}
			case tcell.KeyRight, tcell.KeyEnter:
				if turn < len(result.Turns)-1 {
					turn++
				}
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return
				case ' ':
					if turn < len(result.Turns)-1 {
						turn++
					}
				}
			}
		}
	}
}

// render draws one turn: both HP bars, the turn's actions, and the
// navigation hint.
func (v *Viewer) render(result *battle.Result, matchup Matchup, turn int) {
	v.screen.Clear()

	rec := result.Turns[turn]
	header := fmt.Sprintf("%s vs %s | turn %d/%d", matchup.Names[0], matchup.Names[1], rec.Turn, len(result.Turns))
	v.drawText(0, 0, header, tcell.StyleDefault.Bold(true))

	for side := 0; side < 2; side++ {
		v.drawHPBar(0, 2+side, matchup.Names[side], rec.HP[side], matchup.MaxHP[side], matchup.Colors[side])
	}

	y := 5
	for _, action := range rec.Actions {
		v.drawText(2, y, action, tcell.StyleDefault)
		y++
	}

	footer := "←/→ turn   q quit"
	if turn == len(result.Turns)-1 {
		footer = result.Summary + "   q quit"
	}
	_, height := v.screen.Size()
	v.drawText(0, height-1, footer, tcell.StyleDefault.Foreground(tcell.ColorGray))

	v.screen.Show()
}

const hpBarWidth = 30

// drawHPBar draws a labelled HP gauge, colored by the owning side.
func (v *Viewer) drawHPBar(x, y int, name string, hp, maxHP int, color tcell.Color) {
	label := fmt.Sprintf("%-12s", name)
	v.drawText(x, y, label, tcell.StyleDefault.Foreground(color).Bold(true))

	filled := 0
	if maxHP > 0 {
		filled = hp * hpBarWidth / maxHP
	}
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if hp*4 <= maxHP {
		barStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	} else if hp*2 <= maxHP {
		barStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}

	for i := 0; i < hpBarWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		v.screen.SetContent(x+len(label)+i, y, ch, barStyle)
	}
	v.drawText(x+len(label)+hpBarWidth+1, y, fmt.Sprintf("%d/%d HP", hp, maxHP), tcell.StyleDefault)
}

// drawText writes a string starting at the given position.
func (v *Viewer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		v.screen.SetContent(x+i, y, ch, style)
	}
}
