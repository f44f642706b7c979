// Package buildinfo carries version metadata stamped in at link time.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("librarian %s (commit=%s, date=%s)", Version, Commit, Date)
}
