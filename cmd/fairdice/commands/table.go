package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/orifhon74/task3/internal/domain"
	"github.com/orifhon74/task3/internal/odds"
)

// renderHelp prints the game rules and the win-probability table. Rows are
// the user's candidate dice, columns the opponent's; the diagonal shows the
// self-comparison odds in cyan.
func renderHelp(w io.Writer, set *domain.DiceSet) {
	fmt.Fprintln(w, "\nGame Rules:")
	fmt.Fprintf(w, "Each dice has %d faces with values as defined at the start.\n", set.FaceCount())
	fmt.Fprintln(w, "Your goal is to choose a dice with a higher probability of winning.")
	fmt.Fprintln(w, "\nProbability of the win for the user:")

	matrix := odds.Matrix(set)
	header := make([]string, 0, set.Len()+1)
	header = append(header, "User dice v")
	for i := 0; i < set.Len(); i++ {
		header = append(header, set.Die(i).String())
	}
	data := pterm.TableData{header}
	for i := 0; i < set.Len(); i++ {
		row := make([]string, 0, set.Len()+1)
		row = append(row, set.Die(i).String())
		for j := 0; j < set.Len(); j++ {
			if i == j {
				row = append(row, pterm.Cyan(fmt.Sprintf("- (%.4f)", matrix[i][j])))
			} else {
				row = append(row, colorizeProbability(matrix[i][j]))
			}
		}
		data = append(data, row)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		fmt.Fprintf(w, "render odds table: %v\n", err)
		return
	}
	fmt.Fprintln(w, table)
}

// colorizeProbability colors a probability by how good it is for the user:
// green above an even chance, yellow near the one-third tie band, red below.
func colorizeProbability(p float64) string {
	s := fmt.Sprintf("%.4f", p)
	switch {
	case p > 0.5:
		return pterm.Green(s)
	case p >= 0.33:
		return pterm.Yellow(s)
	default:
		return pterm.Red(s)
	}
}
