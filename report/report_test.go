/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package report

import (
	"strings"
	"testing"

	"github.com/mikeb26/doublesleague/rating"
	"github.com/mikeb26/doublesleague/schedule"
	"github.com/mikeb26/doublesleague/store"
)

func TestBuildPairStatsOutput(t *testing.T) {
	stats := []schedule.PairStat{
		{A: "a", B: "b", Teammates: 2},
		{A: "a", B: "c", Opponents: 1},
		{A: "b", B: "c", Opponents: 1},
	}
	got := BuildPairStatsOutput(stats, 2)
	want := "Player  Player  Teammates  Opponents\n" +
		"a       b       2          0\n" +
		"a       c       0          1\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}

	if BuildPairStatsOutput(nil, 0) != "No pairings recorded\n" {
		t.Errorf("unexpected output for no pairs")
	}
}

func TestBuildLeaderboardOutput(t *testing.T) {
	players := rating.Enhance([]rating.Record{
		{Name: "ann", Rating: 1040, Wins: 6, Losses: 2, PointsFor: 160,
			PointsAgainst: 120, MatchesPlayed: 8},
		{Name: "bob", Rating: 1040.2, Wins: 5, Losses: 3, PointsFor: 150,
			PointsAgainst: 140, MatchesPlayed: 8},
		{Name: "cy", Rating: 987, Wins: 1, Losses: 7, PointsFor: 100,
			PointsAgainst: 168, MatchesPlayed: 8},
	})
	out := BuildLeaderboardOutput(players)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got:\n%v", out)
	}
	if !strings.HasPrefix(lines[0], "Place  Name  Rating  W-L") {
		t.Errorf("header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1.     ann   1040    6-2  75%") ||
		!strings.Contains(lines[1], "+40") || !strings.HasSuffix(lines[1], "0.48") {
		t.Errorf("first row: %q", lines[1])
	}
	// same displayed rating shares the place
	if !strings.HasPrefix(lines[2], "       bob") {
		t.Errorf("tied row should have no place: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "3.     cy") || !strings.Contains(lines[3], "-68") {
		t.Errorf("third row: %q", lines[3])
	}

	if !strings.Contains(BuildLeaderboardOutput(nil), "8 matches") {
		t.Errorf("empty leaderboard should explain the threshold")
	}
}

func testSession() *store.Session {
	return &store.Session{
		ID:   "s1",
		Date: "2025-04-01",
		Rounds: []schedule.Round{{
			Number: 1,
			Courts: []schedule.Court{
				{Round: 1, Number: 1, Teams: [2]schedule.Team{
					{Players: [2]string{"ann", "ben"}, Points: 21},
					{Players: [2]string{"cal", "dee"}, Points: 15},
				}},
				{Round: 1, Number: 2, Teams: [2]schedule.Team{
					{Players: [2]string{"eve", "fay"}},
					{Players: [2]string{"gus", "hal"}},
				}},
			},
		}},
	}
}

func TestBuildScheduleOutput(t *testing.T) {
	got := BuildScheduleOutput(testSession())
	want := "Session s1 (2025-04-01)\n\n" +
		"Round 1\n" +
		"Court  Team A     Team B     Score\n" +
		"1.     ann & ben  cal & dee  21-15\n" +
		"2.     eve & fay  gus & hal  -\n\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuildSessionAnalysis(t *testing.T) {
	out := BuildSessionAnalysis(testSession())
	if !strings.HasPrefix(out, "Session s1 (2025-04-01): 1 of 2 courts scored") {
		t.Errorf("summary line: %q", out)
	}
	order := []string{"ann ", "ben ", "cal ", "dee "}
	last := -1
	for _, name := range order {
		idx := strings.Index(out, "\n"+name)
		if idx < 0 || idx < last {
			t.Errorf("%q missing or out of order in:\n%v", name, out)
		}
		last = idx
	}
	if strings.Contains(out, "eve") {
		t.Errorf("unscored players should not be listed:\n%v", out)
	}
	if !strings.Contains(out, "+6") || !strings.Contains(out, "-6") {
		t.Errorf("point differentials missing:\n%v", out)
	}
}
