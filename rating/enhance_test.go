/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package rating

import (
	"math"
	"testing"
)

func TestEnhance(t *testing.T) {
	cases := []struct {
		name            string
		rec             Record
		wantDiff        int
		wantWinRate     float64
		wantAvgPts      float64
		wantAvgDiff     float64
		wantConsistency float64
	}{
		{
			name:     "no matches",
			rec:      Record{Name: "idle", Rating: 1000},
			wantDiff: 0,
		},
		{
			name: "winless",
			rec: Record{Name: "winless", Losses: 10, PointsFor: 120,
				PointsAgainst: 210, MatchesPlayed: 10},
			wantDiff:    -90,
			wantAvgPts:  12,
			wantAvgDiff: -9,
		},
		{
			name: "half margin",
			rec: Record{Name: "steady", Wins: 8, Losses: 2, PointsFor: 210,
				PointsAgainst: 105, MatchesPlayed: 10},
			wantDiff:        105,
			wantWinRate:     0.8,
			wantAvgPts:      21,
			wantAvgDiff:     10.5,
			wantConsistency: 1,
		},
		{
			name: "blowouts clamp to zero",
			rec: Record{Name: "crusher", Wins: 10, PointsFor: 210,
				PointsAgainst: 0, MatchesPlayed: 10},
			wantDiff:        210,
			wantWinRate:     1,
			wantAvgPts:      21,
			wantAvgDiff:     21,
			wantConsistency: 0,
		},
		{
			name: "even",
			rec: Record{Name: "even", Wins: 5, Losses: 5, PointsFor: 180,
				PointsAgainst: 180, MatchesPlayed: 10},
			wantWinRate:     0.5,
			wantAvgPts:      18,
			wantConsistency: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Enhance([]Record{c.rec})
			if len(got) != 1 {
				t.Fatalf("expected 1 result, got %v", len(got))
			}
			e := got[0]
			if e.Name != c.rec.Name {
				t.Errorf("name: got %q want %q", e.Name, c.rec.Name)
			}
			if e.PointDifferential != c.wantDiff {
				t.Errorf("diff: got %v want %v", e.PointDifferential, c.wantDiff)
			}
			checkFloat(t, "winRate", e.WinRate, c.wantWinRate)
			checkFloat(t, "avgPoints", e.AvgPointsPerGame, c.wantAvgPts)
			checkFloat(t, "avgDiff", e.AvgPointDiffPerGame, c.wantAvgDiff)
			checkFloat(t, "consistency", e.Consistency, c.wantConsistency)
		})
	}
}

func TestEnhance_PreservesOrder(t *testing.T) {
	recs := []Record{{Name: "z", Rating: 1100}, {Name: "a", Rating: 900}}
	got := Enhance(recs)
	if got[0].Name != "z" || got[1].Name != "a" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func checkFloat(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%v: got %v want %v", what, got, want)
	}
}
