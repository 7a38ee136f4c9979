/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster imports player names from a published sign-up page.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoSignupTable = errors.New("no sign-up table with a name column found")

// FetchSignups retrieves url with client and returns the names listed on
// it. See ParseSignups.
func FetchSignups(ctx context.Context, client *http.Client,
	url string) ([]string, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch sign-ups (new): %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch sign-ups (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return ParseSignups(resp.Body)
}

// ParseSignups finds the first HTML table whose header row has a "Name" or
// "Player" column and returns the normalized, de-duplicated names from that
// column in page order.
func ParseSignups(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse sign-up page: %w", err)
	}

	var names []string
	found := false
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		idx := nameColumn(table)
		if idx < 0 {
			return true
		}
		found = true
		seen := make(map[string]bool)
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() <= idx {
				return
			}
			name := NormalizeName(cells.Eq(idx).Text())
			if name == "" || seen[name] {
				return
			}
			seen[name] = true
			names = append(names, name)
		})
		return false
	})
	if !found {
		return nil, ErrNoSignupTable
	}

	return names, nil
}

// nameColumn returns the index of the name column in table's header row, or
// -1.
func nameColumn(table *goquery.Selection) int {
	idx := -1
	table.Find("tr").First().Find("th").EachWithBreak(func(i int, th *goquery.Selection) bool {
		switch strings.ToLower(strings.TrimSpace(th.Text())) {
		case "name", "player", "player name":
			idx = i
			return false
		}
		return true
	})
	return idx
}

// NormalizeName collapses whitespace and title-cases words written in a
// single case, so "  mary   ANN o'brien" becomes "Mary Ann O'Brien". Words
// that already mix case, like "McDonald", are kept as written.
func NormalizeName(s string) string {
	parts := strings.Fields(s)
	for i, p := range parts {
		if p != strings.ToLower(p) && p != strings.ToUpper(p) {
			continue
		}
		rs := []rune(strings.ToLower(p))
		for j := range rs {
			if j == 0 || rs[j-1] == '\'' || rs[j-1] == '-' {
				rs[j] = unicode.ToUpper(rs[j])
			}
		}
		parts[i] = string(rs)
	}
	return strings.Join(parts, " ")
}
