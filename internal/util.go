/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeDate rewrites any date dateparse understands as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", fmt.Errorf("unable to parse date %q: %w", s, err)
	}
	return t.Format(DateLayoutISO), nil
}
