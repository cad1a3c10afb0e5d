package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"payoff-grid/internal/model"

	"github.com/fatih/color"
)

const homeLabel = "HOME"

// Text writes the tabular view: AWAY centred over the away goal columns and
// HOME spelled down the home goal labels. Each column is as wide as its widest
// payoff; positive payoffs are green, negative red, zero white.
func Text(w io.Writer, grid *model.Grid, opts Options) error {
	rows := grid.Rows()
	size := grid.Size()
	widths := columnWidths(rows, size)

	// 7 for the row label, then " <cell> |" per column.
	lineLength := 7
	for _, cw := range widths {
		lineLength += cw + 3
	}
	awayStart := lineLength/2 - 2

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", awayStart))
	b.WriteString("AWAY")
	b.WriteString(strings.Repeat(" ", awayStart))
	b.WriteString("\n")

	numRows := size + 6
	homeStart := numRows/2 - 2
	homeEnd := numRows/2 + 2

	b.WriteString("     ||")
	for away := 0; away < size; away++ {
		label := strconv.Itoa(away)
		fmt.Fprintf(&b, " %s%s |", padding(widths[away], len(label)), label)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", lineLength))
	b.WriteString("\n")

	p := newPainter(opts.Color)
	for home, cells := range rows {
		rowIdx := home + 3
		if rowIdx >= homeStart && rowIdx < homeEnd {
			fmt.Fprintf(&b, "%c %2d ||", homeLabel[rowIdx-homeStart], home)
		} else {
			fmt.Fprintf(&b, "  %2d ||", home)
		}
		for away, payoff := range cells {
			s := formatPayoff(payoff)
			fmt.Fprintf(&b, " %s%s |", padding(widths[away], len(s)), p.paint(s, payoff))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func columnWidths(rows [][]float64, size int) []int {
	widths := make([]int, size)
	for _, cells := range rows {
		for away, payoff := range cells {
			if n := len(formatPayoff(payoff)); n > widths[away] {
				widths[away] = n
			}
		}
	}
	return widths
}

func padding(width, n int) string {
	if n >= width {
		return ""
	}
	return strings.Repeat(" ", width-n)
}

// formatPayoff prints the shortest exact form: 1, -1, 0, 0.5, -0.5.
func formatPayoff(payoff float64) string {
	return strconv.FormatFloat(payoff, 'f', -1, 64)
}

type painter struct {
	enabled bool
	win     *color.Color
	loss    *color.Color
	push    *color.Color
}

func newPainter(enabled bool) *painter {
	p := &painter{
		enabled: enabled,
		win:     color.New(color.FgGreen),
		loss:    color.New(color.FgRed),
		push:    color.New(color.FgWhite),
	}
	if enabled {
		// An explicit request wins over tty detection.
		p.win.EnableColor()
		p.loss.EnableColor()
		p.push.EnableColor()
	}
	return p
}

func (p *painter) paint(s string, payoff float64) string {
	if !p.enabled {
		return s
	}
	switch o := model.OutcomeFromPayoff(payoff); {
	case o.Positive():
		return p.win.Sprint(s)
	case o.Negative():
		return p.loss.Sprint(s)
	default:
		return p.push.Sprint(s)
	}
}
