/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package schedule

import (
	"errors"
	"fmt"
)

// DefaultRating is the rating assumed for every player when no
// RatingSource is supplied.
const DefaultRating = 1000.0

// ErrInsufficientPlayers is returned when not a single court can be filled.
// It is not fatal; the returned schedule is simply empty.
var ErrInsufficientPlayers = errors.New("insufficient players")

// RatingSource supplies a player's current skill rating. *rating.Table
// satisfies it.
type RatingSource interface {
	Rating(name string) float64
}

// RatingMap is a RatingSource backed by a map; missing players are rated
// DefaultRating.
type RatingMap map[string]float64

func (rm RatingMap) Rating(name string) float64 {
	if r, ok := rm[name]; ok {
		return r
	}
	return DefaultRating
}

type Team struct {
	Players [2]string `json:"players"`
	Points  int       `json:"points"`
}

// Court is one 2-v-2 assignment. Round and Number are 1-based.
type Court struct {
	Round  int     `json:"round"`
	Number int     `json:"court"`
	Teams  [2]Team `json:"teams"`
}

func (c Court) ID() string {
	return fmt.Sprintf("r%vc%v", c.Round, c.Number)
}

func (c Court) Scored() bool {
	return c.Teams[0].Points != 0 || c.Teams[1].Points != 0
}

type Round struct {
	Number int     `json:"round"`
	Courts []Court `json:"courts"`
}

// SkippedCourt is a court that could not be filled because fewer than 4
// players were still available in its round.
type SkippedCourt struct {
	Round     int
	Court     int
	Available int
}

type Schedule struct {
	Rounds  []Round
	Skipped []SkippedCourt

	// MaxPairingFrequency is the global teammate count above which a pairing
	// is deprioritized.
	MaxPairingFrequency int
}

// Options controls a single Generate call.
type Options struct {
	Rounds int
	Courts int

	// Ratings defaults to DefaultRating for everyone when nil.
	Ratings RatingSource

	// History holds the global pairing counts to schedule against and is
	// updated with every generated court. A fresh tracker is used when nil.
	History *Tracker
}
