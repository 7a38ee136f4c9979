/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package rating

import (
	"math"
)

// pointsPerGame is the nominal winning score of a game.
const pointsPerGame = 21.0

// Enhanced extends a Record with derived performance metrics. It is a
// distinct type from Record so Enhance cannot be applied twice.
type Enhanced struct {
	Record

	PointDifferential   int     `json:"pointDifferential"`
	WinRate             float64 `json:"winRate"`
	AvgPointsPerGame    float64 `json:"avgPointsPerGame"`
	AvgPointDiffPerGame float64 `json:"avgPointDiffPerGame"`
	Consistency         float64 `json:"consistency"`
}

// Enhance derives secondary metrics for each record, preserving order.
func Enhance(records []Record) []Enhanced {
	ret := make([]Enhanced, 0, len(records))
	for _, r := range records {
		e := Enhanced{
			Record:            r,
			PointDifferential: r.PointsFor - r.PointsAgainst,
		}
		if r.MatchesPlayed > 0 {
			n := float64(r.MatchesPlayed)
			e.WinRate = float64(r.Wins) / n
			e.AvgPointsPerGame = float64(r.PointsFor) / n
			e.AvgPointDiffPerGame = float64(e.PointDifferential) / n
		}
		e.Consistency = consistency(e.WinRate, e.AvgPointDiffPerGame)
		ret = append(ret, e)
	}

	return ret
}

func consistency(winRate float64, avgPointDiff float64) float64 {
	if winRate == 0 {
		return 0
	}
	c := 1 - math.Abs(0.5-avgPointDiff/pointsPerGame)*2

	return math.Max(0, math.Min(1, c))
}
