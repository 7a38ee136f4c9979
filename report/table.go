/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package report formats ratings, schedules and pairing statistics as
// column-aligned text.
package report

import (
	"fmt"
	"strings"
)

// writeTable writes headers and rows left-aligned, columns separated by two
// spaces.
func writeTable(sb *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	writeRow := func(cells []string) {
		var parts []string
		for i, cell := range cells {
			parts = append(parts, fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}
	writeRow(headers)
	for _, r := range rows {
		writeRow(r)
	}
}
