/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package schedule

import (
	"sort"
)

type pairKey struct {
	lo, hi string
}

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// pairCounts is a symmetric player-pair counter.
type pairCounts map[pairKey]int

func (pc pairCounts) get(a, b string) int {
	return pc[keyOf(a, b)]
}

func (pc pairCounts) inc(a, b string) {
	pc[keyOf(a, b)]++
}

func (pc pairCounts) clone() pairCounts {
	ret := make(pairCounts, len(pc))
	for k, v := range pc {
		ret[k] = v
	}
	return ret
}

// Tracker counts how often two players have been teammates or opponents.
// Global counts span every recorded assignment; session counts cover only
// the current generation run and are cleared by ResetSession.
type Tracker struct {
	teammate     pairCounts
	opponent     pairCounts
	sessTeammate pairCounts
	sessOpponent pairCounts
}

func NewTracker() *Tracker {
	return &Tracker{
		teammate:     make(pairCounts),
		opponent:     make(pairCounts),
		sessTeammate: make(pairCounts),
		sessOpponent: make(pairCounts),
	}
}

func (t *Tracker) Teammate(a, b string) int        { return t.teammate.get(a, b) }
func (t *Tracker) Opponent(a, b string) int        { return t.opponent.get(a, b) }
func (t *Tracker) SessionTeammate(a, b string) int { return t.sessTeammate.get(a, b) }
func (t *Tracker) SessionOpponent(a, b string) int { return t.sessOpponent.get(a, b) }

// ResetSession zeroes the session-scoped counters. Global counters are
// untouched.
func (t *Tracker) ResetSession() {
	t.sessTeammate = make(pairCounts)
	t.sessOpponent = make(pairCounts)
}

// Seed records a historical court assignment in the global counters only.
func (t *Tracker) Seed(teamA, teamB [2]string) {
	forEachPair(teamA, teamB, t.teammate.inc, t.opponent.inc)
}

// Commit records a newly generated court assignment in both the global and
// session counters.
func (t *Tracker) Commit(teamA, teamB [2]string) {
	forEachPair(teamA, teamB,
		func(a, b string) {
			t.teammate.inc(a, b)
			t.sessTeammate.inc(a, b)
		},
		func(a, b string) {
			t.opponent.inc(a, b)
			t.sessOpponent.inc(a, b)
		})
}

// forEachPair visits each teammate pair and each cross-team pair exactly
// once.
func forEachPair(teamA, teamB [2]string, mate func(a, b string),
	opp func(a, b string)) {

	mate(teamA[0], teamA[1])
	mate(teamB[0], teamB[1])
	for _, a := range teamA {
		for _, b := range teamB {
			opp(a, b)
		}
	}
}

func (t *Tracker) Clone() *Tracker {
	return &Tracker{
		teammate:     t.teammate.clone(),
		opponent:     t.opponent.clone(),
		sessTeammate: t.sessTeammate.clone(),
		sessOpponent: t.sessOpponent.clone(),
	}
}

// PairStat is the global relationship between two players. A sorts before B.
type PairStat struct {
	A         string
	B         string
	Teammates int
	Opponents int
}

// Pairs returns every pair with a non-zero global count, most frequent
// teammates first, then most frequent opponents, then by name.
func (t *Tracker) Pairs() []PairStat {
	keys := make(map[pairKey]struct{})
	for k := range t.teammate {
		keys[k] = struct{}{}
	}
	for k := range t.opponent {
		keys[k] = struct{}{}
	}

	stats := make([]PairStat, 0, len(keys))
	for k := range keys {
		stats = append(stats, PairStat{
			A:         k.lo,
			B:         k.hi,
			Teammates: t.teammate[k],
			Opponents: t.opponent[k],
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Teammates != stats[j].Teammates {
			return stats[i].Teammates > stats[j].Teammates
		}
		if stats[i].Opponents != stats[j].Opponents {
			return stats[i].Opponents > stats[j].Opponents
		}
		if stats[i].A != stats[j].A {
			return stats[i].A < stats[j].A
		}
		return stats[i].B < stats[j].B
	})

	return stats
}
