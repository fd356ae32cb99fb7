// Package help prints usage and per-topic help, including the license listing.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmccandless/python-bootstrap/internal/license"
)

// Columnize lays items out in three columns, one formatted row per line.
// The first two columns hold len(items)/3 entries each and the third holds
// the rest, so the last rows may have empty leading cells.
func Columnize(items []string) []string {
	split := len(items) / 3
	cols := [3][]string{
		items[:split],
		items[split : 2*split],
		items[2*split:],
	}

	rows := 0
	for _, c := range cols {
		rows = max(rows, len(c))
	}

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		var cells [3]string
		for j, c := range cols {
			if i < len(c) {
				cells[j] = c[i]
			}
		}
		lines = append(lines, fmt.Sprintf("%-20s %-20s %s", cells[0], cells[1], cells[2]))
	}
	return lines
}

// Display writes help for topic to w. An empty topic calls usage; a topic
// mentioning "license" lists the supported licenses.
func Display(w io.Writer, topic string, usage func() error) error {
	switch {
	case topic == "":
		return usage()
	case strings.Contains(topic, "license"):
		fmt.Fprintln(w, "Supported licenses:")
		for _, row := range Columnize(license.Supported) {
			fmt.Fprintln(w, row)
		}
		fmt.Fprintln(w, "If no value is provided, MIT license is used.")
	default:
		fmt.Fprintf(w, "No help available for %q\n", topic)
	}
	return nil
}
