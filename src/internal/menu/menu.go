// Package menu implements the numbered action menu that drives a library
// session: render, read a selection, dispatch, repeat until Exit.
package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"librarian/src/internal/input"
	"librarian/src/internal/screen"
	"librarian/src/internal/shelf"
)

// Signal tells the loop whether to keep going after a handler returns.
// Handlers report control flow explicitly instead of flipping a shared
// running flag.
type Signal int

const (
	Continue Signal = iota
	Exit
)

// Context is the handle passed to every handler: the validated input
// reader, the output stream, and the shelf of records.
type Context struct {
	In    *input.Reader
	Out   io.Writer
	Shelf *shelf.Shelf
}

// Handler performs one menu action against the session context.
type Handler func(ctx *Context) (Signal, error)

// Action pairs a menu label with its handler. Actions are registered once
// at startup and never change afterwards.
type Action struct {
	Label   string
	Handler Handler
}

// Registry holds the ordered list of selectable actions. Registration
// order determines menu order and numbering. The trailing Exit entry is
// synthesized at render time, never stored here.
type Registry struct {
	actions []Action
}

// Add appends an action to the registry.
func (r *Registry) Add(label string, h Handler) {
	r.actions = append(r.actions, Action{Label: label, Handler: h})
}

// Len reports the number of registered actions, excluding Exit.
func (r *Registry) Len() int { return len(r.actions) }

// Labels returns the labels in menu order, excluding Exit.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.actions))
	for i, a := range r.actions {
		out[i] = a.Label
	}
	return out
}

const exitLabel = "Exit"

// Loop owns the Running/Exiting state machine. It renders the menu, reads
// and validates a numeric selection, and dispatches to the chosen action
// until the Exit entry runs or input ends.
type Loop struct {
	reg *Registry
	ctx *Context
}

// NewLoop returns a loop over reg bound to ctx.
func NewLoop(reg *Registry, ctx *Context) *Loop {
	return &Loop{reg: reg, ctx: ctx}
}

// Run drives the menu until an Exit signal. It returns nil on a normal
// exit; the only error paths are IO failure on the selection read and
// errors surfaced by handlers.
func (l *Loop) Run() error {
	for {
		l.renderMenu()
		choice, err := l.readChoice()
		if err != nil {
			return err
		}
		act := Action{Label: exitLabel, Handler: exitHandler}
		if choice <= l.reg.Len() {
			screen.Clear(l.ctx.Out)
			act = l.reg.actions[choice-1]
		}
		sig, err := act.Handler(l.ctx)
		if err != nil {
			return err
		}
		if sig == Exit {
			return nil
		}
	}
}

// renderMenu clears the screen and prints the numbered entries. The entry
// count is recomputed on every render: registered actions plus the final
// Exit entry.
func (l *Loop) renderMenu() {
	out := l.ctx.Out
	screen.Clear(out)
	_, _ = fmt.Fprintln(out, "Welcome to the library!")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "Please choose an action:")
	for i, a := range l.reg.actions {
		_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, a.Label)
	}
	_, _ = fmt.Fprintf(out, "%d. %s\n", l.reg.Len()+1, exitLabel)
	_, _ = fmt.Fprintln(out)
}

// readChoice prompts until the user enters an integer in [1, actions+1].
// Anything else re-renders the menu with the invalid-input complaint and
// asks again, without bound.
func (l *Loop) readChoice() (int, error) {
	max := l.reg.Len() + 1
	for {
		_, _ = fmt.Fprint(l.ctx.Out, "Enter your choice: ")
		line, err := l.ctx.In.Line()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 1 || n > max {
			l.renderMenu()
			_, _ = fmt.Fprintln(l.ctx.Out, input.InvalidInput)
			continue
		}
		return n, nil
	}
}

func exitHandler(ctx *Context) (Signal, error) {
	screen.Clear(ctx.Out)
	_, _ = fmt.Fprintln(ctx.Out, "Thank you for using the library!")
	return Exit, nil
}
