// Package screen clears the console between interactions.
package screen

import (
	"fmt"
	"io"
)

// clearAndHome erases the visible screen and moves the cursor to the top
// left. Writing the ANSI sequence keeps the behavior testable and avoids
// shelling out to clear/cls.
const clearAndHome = "\x1b[2J\x1b[H"

// Clear wipes the terminal attached to w.
func Clear(w io.Writer) {
	_, _ = fmt.Fprint(w, clearAndHome)
}
