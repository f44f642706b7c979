// Package input reads and validates line-oriented console input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"librarian/src/internal/screen"
)

// InvalidInput is the complaint printed before any re-prompt, shared with
// the menu loop so every rejection reads the same.
const InvalidInput = "Invalid input. Please try again."

// Reader prompts on out and reads line-oriented input from in. Validation
// failures are handled locally by re-prompting; the only errors it returns
// are real IO failures such as end of input.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader over the given streams.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line reads one line with the trailing CR/LF removed. Data arriving at end
// of input without a final newline still counts as a line; the error is
// reported on the next call.
func (r *Reader) Line() (string, error) {
	s, err := r.in.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Validated prompts with prompt and reads lines until one matches pattern
// in full, clearing the screen and printing InvalidInput after each
// rejection. There is no retry cap. The returned line is exactly what the
// user typed; no trimming or case folding is applied.
func (r *Reader) Validated(prompt string, pattern *regexp.Regexp) (string, error) {
	for {
		_, _ = fmt.Fprint(r.out, prompt)
		s, err := r.Line()
		if err != nil {
			return "", err
		}
		if pattern.MatchString(s) {
			return s, nil
		}
		screen.Clear(r.out)
		_, _ = fmt.Fprintln(r.out, InvalidInput)
	}
}

// Pause prints the continue prompt and consumes one line.
func (r *Reader) Pause() {
	_, _ = fmt.Fprintln(r.out, "Press enter to continue...")
	_, _ = r.Line()
}
