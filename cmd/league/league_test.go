/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"reflect"
	"testing"

	"github.com/mikeb26/doublesleague/rating"
	"github.com/mikeb26/doublesleague/schedule"
	"github.com/mikeb26/doublesleague/store"
)

func TestSplitList(t *testing.T) {
	got := splitList(" ann, ben ,,cal ")
	want := []string{"ann", "ben", "cal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	if splitList("") != nil {
		t.Errorf("empty list should be nil")
	}
}

func TestRatingFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := ratingFlags(fs)
	if err := fs.Parse([]string{"--k", "40", "--pdw", "0.02"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := rating.DefaultConfig()
	want.KFactor = 40
	want.PointDiffWeight = 0.02
	if *cfg != want {
		t.Errorf("got %+v want %+v", *cfg, want)
	}
}

func TestLoadLeague(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, "mem")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	players := []string{"ann", "ben", "cal", "dee"}
	if err := st.AddPlayers(players...); err != nil {
		t.Fatalf("add players: %v", err)
	}

	// 8 identical scored courts ranks everyone
	sched := &schedule.Schedule{}
	for r := 1; r <= rating.MinMatchesRanked; r++ {
		sched.Rounds = append(sched.Rounds, schedule.Round{
			Number: r,
			Courts: []schedule.Court{{Round: r, Number: 1,
				Teams: [2]schedule.Team{
					{Players: [2]string{"ann", "ben"}, Points: 21},
					{Players: [2]string{"cal", "dee"}, Points: 11},
				}}},
		})
	}
	if _, err := st.NewSession("2025-05-01", players, 1, sched); err != nil {
		t.Fatalf("new session: %v", err)
	}

	l := loadLeague(ctx, st, rating.DefaultConfig())
	if len(l.history) != 1 || len(l.table.Records) != 4 {
		t.Fatalf("unexpected league: %v sessions, %v ranked", len(l.history),
			len(l.table.Records))
	}
	if l.table.Rating("ann") <= l.table.Rating("cal") {
		t.Errorf("winners should outrank losers: ann=%v cal=%v",
			l.table.Rating("ann"), l.table.Rating("cal"))
	}
}
