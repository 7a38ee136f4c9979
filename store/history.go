/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package store

import (
	"github.com/mikeb26/doublesleague/rating"
	"github.com/mikeb26/doublesleague/schedule"
)

// Matches flattens the session's courts, in round then court order.
// Unscored courts are included; the rating engine skips them.
func (sess *Session) Matches() []rating.Match {
	var matches []rating.Match
	for _, r := range sess.Rounds {
		for _, c := range r.Courts {
			matches = append(matches, rating.Match{
				TeamA:  c.Teams[0].Players,
				TeamB:  c.Teams[1].Players,
				ScoreA: c.Teams[0].Points,
				ScoreB: c.Teams[1].Points,
			})
		}
	}
	return matches
}

func RatingSessions(sessions []*Session) []rating.Session {
	ret := make([]rating.Session, 0, len(sessions))
	for _, sess := range sessions {
		ret = append(ret, rating.Session{
			ID:      sess.ID,
			Date:    sess.Date,
			Matches: sess.Matches(),
		})
	}
	return ret
}

// SeedTracker builds global pairing counts from every stored court
// assignment, scored or not.
func SeedTracker(sessions []*Session) *schedule.Tracker {
	tracker := schedule.NewTracker()
	for _, sess := range sessions {
		for _, r := range sess.Rounds {
			for _, c := range r.Courts {
				tracker.Seed(c.Teams[0].Players, c.Teams[1].Players)
			}
		}
	}
	return tracker
}
