// Package display renders tic-tac-toe boards and search progress to a
// terminal, using termenv for coloring the way the rest of the corpus
// reaches for a terminal-styling library rather than raw ANSI escapes
// sprinkled through print statements.
package display

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/mcst"
)

var profile = termenv.ColorProfile()

var (
	xStyle   = termenv.Style{}.Foreground(profile.Color("39")).Bold()
	oStyle   = termenv.Style{}.Foreground(profile.Color("203")).Bold()
	dimStyle = termenv.Style{}.Foreground(profile.Color("240"))
)

func cellGlyph(p ttt.Player) string {
	switch p {
	case ttt.X:
		return xStyle.Styled("X")
	case ttt.O:
		return oStyle.Styled("O")
	default:
		return dimStyle.Styled(".")
	}
}

// Board writes a 3x3 rendering of pos to w, e.g.:
//
//	X . O
//	. X .
//	O . X
func Board(w io.Writer, pos *ttt.Position) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sq := ttt.Square(row*3 + col)
			fmt.Fprint(w, cellGlyph(pos.At(sq)))
			if col < 2 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
}

// SearchStats is a snapshot of a single Evaluate cycle, shaped to print
// alongside a board: running best line and cycle count during a long
// search.
type SearchStats struct {
	Cycles         int
	BestMove       ttt.Square
	NumSimulations int
	WinRate        float64
}

// PrintSearchStats writes one progress line, e.g.:
//
//	[cycle 4200] best=C1 sims=4200 winrate=71.3%
func PrintSearchStats(w io.Writer, s SearchStats) {
	fmt.Fprintf(w, "%s best=%s sims=%d winrate=%.1f%%\n",
		dimStyle.Styled(fmt.Sprintf("[cycle %d]", s.Cycles)),
		s.BestMove, s.NumSimulations, s.WinRate*100)
}

// TerminalBanner prints a colored end-of-game line for outcome, from
// engine's point of view (the side the search was run for).
func TerminalBanner(w io.Writer, o ttt.Outcome, engine ttt.Player) {
	switch o {
	case ttt.OutcomeDraw:
		fmt.Fprintln(w, dimStyle.Styled("draw"))
	case ttt.OutcomeXWon, ttt.OutcomeOWon:
		winner := ttt.X
		if o == ttt.OutcomeOWon {
			winner = ttt.O
		}
		style := oStyle
		if winner == ttt.X {
			style = xStyle
		}
		if winner == engine {
			fmt.Fprintln(w, style.Styled(fmt.Sprintf("%s wins", winner)))
		} else {
			fmt.Fprintln(w, style.Styled(fmt.Sprintf("%s wins (engine lost)", winner)))
		}
	default:
		fmt.Fprintln(w, "game in progress")
	}
}

// terminalTag renders a node's TerminalType for tree-dump output, dim
// when the node has not yet been resolved.
func terminalTag(t mcst.TerminalType) string {
	if t == mcst.NotTerminal {
		return dimStyle.Styled("?")
	}
	return t.String()
}

// DumpTree writes an indented decision-tree dump rooted at root, one
// line per node: depth-prefixed indentation, move used to reach the
// node, simulation count and terminal classification.
func DumpTree(w io.Writer, arena *mcst.Arena[ttt.Square], root mcst.NodeIndex) {
	dumpTreeHelper(w, arena, root, 0)
}

func dumpTreeHelper(w io.Writer, arena *mcst.Arena[ttt.Square], idx mcst.NodeIndex, depth int) {
	node := arena.Node(idx)
	fmt.Fprintf(w, "%s(move=%s, depth=%d, sims=%d, value=%.2f, terminal=%s)\n",
		dimStyle.Styled(indent(depth)), node.MoveToGetHere, node.Depth, node.NumSimulations,
		node.Value, terminalTag(node.TerminalType))

	for _, child := range arena.Children(idx) {
		dumpTreeHelper(w, arena, child, depth+1)
	}
}

func indent(depth int) string {
	b := make([]byte, depth*4)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
