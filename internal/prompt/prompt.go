// Package prompt collects per-letter feedback from the player at the
// terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bukvoed/internal/solver"
	"bukvoed/internal/words"
)

var (
	guessStyle  = lipgloss.NewStyle().Bold(true)
	legendStyle = lipgloss.NewStyle().Faint(true)
)

// Console asks the player for feedback over plain line I/O. Reading
// blocks until the player answers; malformed answers are re-asked in
// place and never surface as errors.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole builds a Console over the given streams. Tests pass
// buffers; the CLI passes stdin and stdout.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Feedback implements game.Oracle. It displays the guess and loops
// until the player enters five characters out of {0,1,2}. The only
// error paths are end of input and a broken reader.
func (c *Console) Feedback(guess words.Word) (solver.Pattern, error) {
	fmt.Fprintf(c.out, "\n%s\n", guessStyle.Render("Guess: "+strings.ToUpper(guess.String())))
	for {
		fmt.Fprintf(c.out, "%s ", legendStyle.Render("Result (0=grey, 1=yellow, 2=green, e.g. 01020):"))
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return solver.Pattern{}, fmt.Errorf("failed to read feedback: %w", err)
			}
			return solver.Pattern{}, io.EOF
		}
		p, err := solver.ParsePattern(strings.TrimSpace(c.in.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input, enter five characters out of {0,1,2}.")
			continue
		}
		return p, nil
	}
}
