/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package rating

import (
	"math"
)

// Config holds the tunables of the doubles Elo model.
type Config struct {
	InitialRating   float64
	KFactor         float64
	KFactorMin      float64
	KFactorDecay    float64
	PointDiffWeight float64
}

// MinMatchesRanked is the number of scored matches a player needs before
// they appear in a rating table.
const MinMatchesRanked = 8

func DefaultConfig() Config {
	return Config{
		InitialRating:   1000,
		KFactor:         32,
		KFactorMin:      16,
		KFactorDecay:    0.1,
		PointDiffWeight: 0.01,
	}
}

func expectedScore(myRating float64, oppRating float64) float64 {
	// 1/(1+10^((opp-my)/400))
	exp := math.Pow(10, (oppRating-myRating)/400.0)
	return 1.0 / (1.0 + exp)
}

// KFor computes K for a player who has already played matchesPlayed
// scored matches. K decays exponentially with experience down to
// cfg.KFactorMin.
func (cfg Config) KFor(matchesPlayed int) float64 {
	k := cfg.KFactor * math.Exp(-cfg.KFactorDecay*float64(matchesPlayed))
	return math.Max(cfg.KFactorMin, k)
}

func actualScore(scoreA int, scoreB int) float64 {
	if scoreA > scoreB {
		return 1.0
	} else if scoreA < scoreB {
		return 0.0
	}
	return 0.5
}

// signedPointDiff is the margin of victory normalized by total points; 0
// when no points were scored.
func signedPointDiff(scoreA int, scoreB int) float64 {
	total := scoreA + scoreB
	if total == 0 {
		return 0.0
	}
	return float64(scoreA-scoreB) / float64(total)
}

// roundHalfUp rounds .5 toward +Inf so that a -2.5 delta becomes -2 rather
// than -3.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// pairDelta computes the rating change for one cross-team pairing of a
// match. kA and kB are each side's K factor before the match.
func (cfg Config) pairDelta(ratingA, ratingB, kA, kB float64, scoreA,
	scoreB int) (float64, float64) {

	expected := expectedScore(ratingA, ratingB)
	actual := actualScore(scoreA, scoreB)
	diff := signedPointDiff(scoreA, scoreB)
	pdf := cfg.PointDiffWeight * math.Abs(diff)

	deltaA := roundHalfUp(kA * ((actual - expected) + pdf*diff))
	deltaB := roundHalfUp(kB * (((1 - actual) - (1 - expected)) - pdf*diff))

	return deltaA, deltaB
}
