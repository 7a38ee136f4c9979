/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package schedule

import (
	"log"
	"math"
	"sort"
)

// candidate scoring weights
const (
	histTeammateWeight = 1
	histOpponentWeight = 1
	sessTeammateWeight = 100
	sessOpponentWeight = 50
)

// team split scoring weights
const (
	splitRatingWeight       = 200.0
	splitHistTeammateWeight = 1.0
	splitSessTeammateWeight = 50.0
	splitSessOpponentWeight = 100.0
)

// splits are the three ways to divide 4 players, by rating rank, into two
// teams: 1+4 v 2+3, 1+3 v 2+4, 1+2 v 3+4.
var splits = [3][2][2]int{
	{{0, 3}, {1, 2}},
	{{0, 2}, {1, 3}},
	{{0, 1}, {2, 3}},
}

// Generate assigns roster to opts.Rounds rounds of opts.Courts courts. Each
// court is filled greedily with the 4 players who have been paired together
// least, then split into the two most evenly rated teams. Ties are always
// broken by player name, so identical inputs give identical schedules.
//
// If a round runs out of players, the remaining courts of that round are
// listed in Schedule.Skipped. If no court can be filled at all, an empty
// schedule and ErrInsufficientPlayers are returned.
func Generate(roster []string, opts Options) (*Schedule, error) {
	players := uniqueSorted(roster)
	sched := &Schedule{}

	if opts.Courts <= 0 || len(players) < 4 {
		log.Printf("schedule.generate: %v players cannot fill %v courts",
			len(players), opts.Courts)
		return sched, ErrInsufficientPlayers
	}
	if opts.Rounds <= 0 {
		return sched, nil
	}

	ratings := opts.Ratings
	if ratings == nil {
		ratings = RatingMap{}
	}
	tracker := opts.History
	if tracker == nil {
		tracker = NewTracker()
	}
	tracker.ResetSession()

	g := &generator{
		tracker: tracker,
		ratings: ratings,
		maxFreq: maxPairingFrequency(opts.Rounds, opts.Courts, len(players)),
	}
	sched.MaxPairingFrequency = g.maxFreq

	for r := 1; r <= opts.Rounds; r++ {
		round := Round{Number: r}
		available := append([]string(nil), players...)
		for c := 1; c <= opts.Courts; c++ {
			if len(available) < 4 {
				log.Printf("schedule.generate: skipping court %v of round %v: only %v players available",
					c, r, len(available))
				sched.Skipped = append(sched.Skipped, SkippedCourt{
					Round: r, Court: c, Available: len(available)})
				continue
			}
			chosen := g.pickCourtPlayers(available)
			teamA, teamB := g.balanceTeams(chosen)
			g.tracker.Commit(teamA, teamB)
			available = without(available, chosen)

			round.Courts = append(round.Courts, Court{
				Round:  r,
				Number: c,
				Teams:  [2]Team{{Players: teamA}, {Players: teamB}},
			})
		}
		sched.Rounds = append(sched.Rounds, round)
	}

	return sched, nil
}

func maxPairingFrequency(rounds int, courts int, numPlayers int) int {
	return int(math.Ceil(float64(rounds*courts) / (float64(numPlayers) / 2.0)))
}

type generator struct {
	tracker *Tracker
	ratings RatingSource
	maxFreq int
}

// pickCourtPlayers chooses 4 players from available, which must be sorted
// by name.
func (g *generator) pickCourtPlayers(available []string) []string {
	chosen := []string{g.pickFirst(available)}
	for len(chosen) < 4 {
		chosen = append(chosen, g.pickNext(available, chosen))
	}

	return chosen
}

// pickFirst returns the available player with the fewest historical
// pairings against everyone else available.
func (g *generator) pickFirst(available []string) string {
	best := ""
	bestScore := math.MaxInt
	for _, p := range available {
		score := 0
		for _, q := range available {
			if p == q {
				continue
			}
			score += g.tracker.Teammate(p, q) + g.tracker.Opponent(p, q)
		}
		if score < bestScore {
			best, bestScore = p, score
		}
	}

	return best
}

type scoredCandidate struct {
	name  string
	score int
}

func (g *generator) pickNext(available []string, chosen []string) string {
	var cands []scoredCandidate
	for _, p := range available {
		if contains(chosen, p) {
			continue
		}
		score := 0
		for _, c := range chosen {
			score += g.tracker.Teammate(p, c)*histTeammateWeight +
				g.tracker.Opponent(p, c)*histOpponentWeight +
				g.tracker.SessionTeammate(p, c)*sessTeammateWeight +
				g.tracker.SessionOpponent(p, c)*sessOpponentWeight
		}
		cands = append(cands, scoredCandidate{name: p, score: score})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score < cands[j].score
		}
		return cands[i].name < cands[j].name
	})

	for _, c := range cands {
		if g.eligible(c.name, chosen, 0) {
			return c.name
		}
	}
	for _, c := range cands {
		if g.eligible(c.name, chosen, 1) {
			return c.name
		}
	}

	return cands[0].name
}

// eligible reports whether p may join chosen: below the global teammate cap
// with each of them, never their session teammate, and their session
// opponent at most maxSessOpp times.
func (g *generator) eligible(p string, chosen []string, maxSessOpp int) bool {
	for _, c := range chosen {
		if g.tracker.Teammate(p, c) >= g.maxFreq {
			return false
		}
		if g.tracker.SessionTeammate(p, c) > 0 {
			return false
		}
		if g.tracker.SessionOpponent(p, c) > maxSessOpp {
			return false
		}
	}

	return true
}

// balanceTeams splits 4 players into the two teams with the lowest combined
// rating imbalance and pairing repetition cost.
func (g *generator) balanceTeams(four []string) ([2]string, [2]string) {
	ranked := append([]string(nil), four...)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := g.ratings.Rating(ranked[i]), g.ratings.Rating(ranked[j])
		if ri != rj {
			return ri > rj
		}
		return ranked[i] < ranked[j]
	})

	var bestA, bestB [2]string
	bestScore := math.Inf(1)
	for _, s := range splits {
		teamA := [2]string{ranked[s[0][0]], ranked[s[0][1]]}
		teamB := [2]string{ranked[s[1][0]], ranked[s[1][1]]}
		score := g.splitScore(teamA, teamB)
		if score < bestScore {
			bestA, bestB, bestScore = teamA, teamB, score
		}
	}

	return bestA, bestB
}

func (g *generator) splitScore(teamA, teamB [2]string) float64 {
	sumA := g.ratings.Rating(teamA[0]) + g.ratings.Rating(teamA[1])
	sumB := g.ratings.Rating(teamB[0]) + g.ratings.Rating(teamB[1])

	histMates := g.tracker.Teammate(teamA[0], teamA[1]) +
		g.tracker.Teammate(teamB[0], teamB[1])
	sessMates := g.tracker.SessionTeammate(teamA[0], teamA[1]) +
		g.tracker.SessionTeammate(teamB[0], teamB[1])

	// any repeated session opponent dominates rating balance
	sessOpp := 0.0
	for _, a := range teamA {
		for _, b := range teamB {
			sessOpp += math.Pow(10, float64(g.tracker.SessionOpponent(a, b)+1))
		}
	}

	return splitRatingWeight*math.Abs(sumA-sumB) +
		splitHistTeammateWeight*float64(histMates) +
		splitSessTeammateWeight*float64(sessMates) +
		splitSessOpponentWeight*sessOpp
}

func uniqueSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	ret := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		ret = append(ret, n)
	}
	sort.Strings(ret)

	return ret
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func without(list []string, remove []string) []string {
	ret := make([]string, 0, len(list))
	for _, v := range list {
		if !contains(remove, v) {
			ret = append(ret, v)
		}
	}
	return ret
}
