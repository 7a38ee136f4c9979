/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/doublesleague/schedule"
	"github.com/mikeb26/doublesleague/store"
)

func teamString(t schedule.Team) string {
	return t.Players[0] + " & " + t.Players[1]
}

// BuildScheduleOutput formats a session's rounds, one table per round.
func BuildScheduleOutput(sess *store.Session) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Session %v (%v)\n\n", sess.ID, sess.Date))
	if len(sess.Rounds) == 0 {
		sb.WriteString("No rounds scheduled\n")
		return sb.String()
	}

	for _, r := range sess.Rounds {
		var rows [][]string
		for _, c := range r.Courts {
			score := "-"
			if c.Scored() {
				score = fmt.Sprintf("%v-%v", c.Teams[0].Points,
					c.Teams[1].Points)
			}
			rows = append(rows, []string{
				fmt.Sprintf("%v.", c.Number),
				teamString(c.Teams[0]),
				teamString(c.Teams[1]),
				score,
			})
		}
		sb.WriteString(fmt.Sprintf("Round %v\n", r.Number))
		writeTable(&sb, []string{"Court", "Team A", "Team B", "Score"}, rows)
		sb.WriteString("\n")
	}

	return sb.String()
}

type sessionLine struct {
	name          string
	wins, losses  int
	pointsFor     int
	pointsAgainst int
}

// BuildSessionAnalysis summarizes how far a session has been scored and
// each player's record within it.
func BuildSessionAnalysis(sess *store.Session) string {
	total, scored := 0, 0
	lines := make(map[string]*sessionLine)
	line := func(name string) *sessionLine {
		l, ok := lines[name]
		if !ok {
			l = &sessionLine{name: name}
			lines[name] = l
		}
		return l
	}

	for _, r := range sess.Rounds {
		for _, c := range r.Courts {
			total++
			if !c.Scored() {
				continue
			}
			scored++
			for side, team := range c.Teams {
				own, opp := team.Points, c.Teams[1-side].Points
				for _, p := range team.Players {
					l := line(p)
					l.pointsFor += own
					l.pointsAgainst += opp
					if own > opp {
						l.wins++
					} else if own < opp {
						l.losses++
					}
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session %v (%v): %v of %v courts scored\n\n",
		sess.ID, sess.Date, scored, total))
	if scored == 0 {
		return sb.String()
	}

	sorted := make([]*sessionLine, 0, len(lines))
	for _, l := range lines {
		sorted = append(sorted, l)
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.wins != b.wins {
			return a.wins > b.wins
		}
		da, db := a.pointsFor-a.pointsAgainst, b.pointsFor-b.pointsAgainst
		if da != db {
			return da > db
		}
		return a.name < b.name
	})

	var rows [][]string
	for _, l := range sorted {
		rows = append(rows, []string{
			l.name,
			fmt.Sprintf("%v-%v", l.wins, l.losses),
			fmt.Sprintf("%v", l.pointsFor),
			fmt.Sprintf("%v", l.pointsAgainst),
			fmt.Sprintf("%+d", l.pointsFor-l.pointsAgainst),
		})
	}
	writeTable(&sb, []string{"Name", "W-L", "PF", "PA", "+/-"}, rows)

	return sb.String()
}
