package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"librarian/src/internal/input"
	"librarian/src/internal/menu"
	"librarian/src/internal/shelf"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "librarian",
		Short:        "Interactive in-memory book library console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := &menu.Context{
				In:    input.New(cmd.InOrStdin(), cmd.OutOrStdout()),
				Out:   cmd.OutOrStdout(),
				Shelf: shelf.New(),
			}
			return menu.NewLoop(newRegistry(), ctx).Run()
		},
	}
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// newRegistry wires the default menu in its fixed order; the loop appends
// the Exit entry on its own.
func newRegistry() *menu.Registry {
	reg := &menu.Registry{}
	reg.Add("Add a book", addBook)
	reg.Add("Search book", searchBook)
	reg.Add("Display books", displayBooks)
	return reg
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
