/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package report

import (
	"fmt"
	"strings"

	"github.com/mikeb26/doublesleague/rating"
	"github.com/mikeb26/doublesleague/schedule"
)

// BuildLeaderboardOutput formats ranked players in the order given. Players
// with the same (rounded) rating share a place.
func BuildLeaderboardOutput(players []rating.Enhanced) string {
	if len(players) == 0 {
		return fmt.Sprintf("No players have played %v matches yet\n",
			rating.MinMatchesRanked)
	}

	var rows [][]string
	priorRating := ""
	for idx, p := range players {
		r := fmt.Sprintf("%.0f", p.Rating)
		place := ""
		if idx == 0 || r != priorRating {
			place = fmt.Sprintf("%v.", idx+1)
			priorRating = r
		}
		rows = append(rows, []string{
			place,
			p.Name,
			r,
			fmt.Sprintf("%v-%v", p.Wins, p.Losses),
			fmt.Sprintf("%.0f%%", p.WinRate*100),
			fmt.Sprintf("%+d", p.PointDifferential),
			fmt.Sprintf("%.1f", p.AvgPointsPerGame),
			fmt.Sprintf("%.2f", p.Consistency),
		})
	}

	var sb strings.Builder
	writeTable(&sb, []string{"Place", "Name", "Rating", "W-L", "Win%", "+/-",
		"Pts/G", "Consistency"}, rows)

	return sb.String()
}

// BuildPairStatsOutput lists up to limit pairs (all if limit <= 0) by how
// often they have been teammates and opponents.
func BuildPairStatsOutput(stats []schedule.PairStat, limit int) string {
	if len(stats) == 0 {
		return "No pairings recorded\n"
	}
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	var rows [][]string
	for _, s := range stats {
		rows = append(rows, []string{
			s.A,
			s.B,
			fmt.Sprintf("%v", s.Teammates),
			fmt.Sprintf("%v", s.Opponents),
		})
	}

	var sb strings.Builder
	writeTable(&sb, []string{"Player", "Player", "Teammates", "Opponents"},
		rows)

	return sb.String()
}
