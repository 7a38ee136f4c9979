/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package rating

import (
	"log"
	"sort"
	"time"

	"github.com/mikeb26/doublesleague/internal"
)

// Match is one scored 2-v-2 court. A match where both scores are zero has not
// been played yet.
type Match struct {
	TeamA  [2]string `json:"teamA"`
	TeamB  [2]string `json:"teamB"`
	ScoreA int       `json:"scoreA"`
	ScoreB int       `json:"scoreB"`
}

func (m Match) Played() bool {
	return m.ScoreA != 0 || m.ScoreB != 0
}

// Session is one league meeting. Date is any format dateparse understands
// and Matches are in round then court order.
type Session struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// Record is a player's rating state after replaying history.
type Record struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	PointsFor     int     `json:"pointsFor"`
	PointsAgainst int     `json:"pointsAgainst"`
	MatchesPlayed int     `json:"matchesPlayed"`
}

// Table is the ranked output of ComputeRatings. Records holds only players
// with at least MinMatchesRanked matches, highest rating first.
type Table struct {
	Records []Record

	initial float64
	byName  map[string]int
}

// Get returns the ranked record for name.
func (t *Table) Get(name string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	idx, ok := t.byName[name]
	if !ok {
		return Record{}, false
	}
	return t.Records[idx], true
}

// Rating returns name's rating if they are ranked, otherwise the configured
// initial rating.
func (t *Table) Rating(name string) float64 {
	if r, ok := t.Get(name); ok {
		return r.Rating
	}
	if t == nil {
		return DefaultConfig().InitialRating
	}
	return t.initial
}

type datedSession struct {
	date time.Time
	sess *Session
}

func sortSessions(sessions []Session) []datedSession {
	dated := make([]datedSession, 0, len(sessions))
	for i := range sessions {
		d, err := internal.ParseDateOrZero(sessions[i].Date)
		if err != nil {
			log.Printf("rating.compute: session %v has unparseable date %q: %v",
				sessions[i].ID, sessions[i].Date, err)
			d = time.Time{}
		}
		dated = append(dated, datedSession{date: d, sess: &sessions[i]})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})

	return dated
}

// ComputeRatings replays every scored match of every session, oldest
// session first, and returns the resulting rating table. It holds no state
// between calls; the full history is replayed each time.
//
// Players referenced by a match but absent from roster are ignored: any
// cross-team pairing involving them is skipped and no stats are recorded
// for them.
func ComputeRatings(roster []string, sessions []Session, cfg Config) *Table {
	players, order := replay(roster, sessions, cfg)

	table := &Table{
		initial: cfg.InitialRating,
		byName:  make(map[string]int),
	}
	for _, name := range order {
		r := players[name]
		if r.MatchesPlayed >= MinMatchesRanked {
			table.Records = append(table.Records, *r)
		}
	}
	sort.SliceStable(table.Records, func(i, j int) bool {
		return table.Records[i].Rating > table.Records[j].Rating
	})
	for i, r := range table.Records {
		table.byName[r.Name] = i
	}

	return table
}

// replay returns every roster player's record, ranked or not, along with the
// de-duplicated roster order.
func replay(roster []string, sessions []Session,
	cfg Config) (map[string]*Record, []string) {

	players := make(map[string]*Record, len(roster))
	order := make([]string, 0, len(roster))
	for _, name := range roster {
		if _, ok := players[name]; ok {
			continue
		}
		players[name] = &Record{Name: name, Rating: cfg.InitialRating}
		order = append(order, name)
	}

	for _, ds := range sortSessions(sessions) {
		for _, m := range ds.sess.Matches {
			if !m.Played() {
				continue
			}
			applyMatch(players, m, cfg)
		}
	}

	return players, order
}

// applyMatch runs the 4 cross-team Elo updates for m and then updates the
// per-player aggregates. Each pairwise delta is applied before the next
// pairing is evaluated, so later pairings see the updated ratings.
func applyMatch(players map[string]*Record, m Match, cfg Config) {
	for _, a := range m.TeamA {
		for _, b := range m.TeamB {
			pa, okA := players[a]
			pb, okB := players[b]
			if !okA || !okB {
				continue
			}
			dA, dB := cfg.pairDelta(pa.Rating, pb.Rating,
				cfg.KFor(pa.MatchesPlayed), cfg.KFor(pb.MatchesPlayed),
				m.ScoreA, m.ScoreB)
			pa.Rating += dA
			pb.Rating += dB
		}
	}

	recordResult(players, m.TeamA, m.ScoreA, m.ScoreB)
	recordResult(players, m.TeamB, m.ScoreB, m.ScoreA)
}

func recordResult(players map[string]*Record, team [2]string, own int,
	opp int) {

	for _, name := range team {
		p, ok := players[name]
		if !ok {
			continue
		}
		p.MatchesPlayed++
		p.PointsFor += own
		p.PointsAgainst += opp
		if own > opp {
			p.Wins++
		} else if own < opp {
			p.Losses++
		}
	}
}
