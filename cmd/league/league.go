/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mikeb26/doublesleague/internal"
	"github.com/mikeb26/doublesleague/rating"
	"github.com/mikeb26/doublesleague/store"
)

func storeFlag(fs *flag.FlagSet) *string {
	def := os.Getenv(internal.StoreEnvVar)
	if def == "" {
		def = internal.DefaultStore
	}
	return fs.String("store", def, "League store: mem, dir:<path> or s3:<bucket>")
}

func ratingFlags(fs *flag.FlagSet) *rating.Config {
	cfg := rating.DefaultConfig()
	fs.Float64Var(&cfg.InitialRating, "initial", cfg.InitialRating,
		"Rating of a player with no history")
	fs.Float64Var(&cfg.KFactor, "k", cfg.KFactor, "K factor of a new player")
	fs.Float64Var(&cfg.KFactorMin, "kmin", cfg.KFactorMin, "Minimum K factor")
	fs.Float64Var(&cfg.KFactorDecay, "decay", cfg.KFactorDecay,
		"K factor decay per match played")
	fs.Float64Var(&cfg.PointDiffWeight, "pdw", cfg.PointDiffWeight,
		"Weight of the point differential")
	return &cfg
}

func openStore(ctx context.Context, spec string) *store.Store {
	st, err := store.Open(ctx, spec)
	if err != nil {
		log.Fatalf("Error opening store %v: %v", spec, err)
	}
	return st
}

type league struct {
	players []string
	history []*store.Session
	table   *rating.Table
}

// loadLeague reads the roster and every session and replays them into a
// rating table.
func loadLeague(ctx context.Context, st *store.Store, cfg rating.Config) *league {
	players, err := st.Players()
	if err != nil {
		log.Fatalf("Error fetching roster: %v", err)
	}
	history, err := st.LoadHistory(ctx)
	if err != nil {
		log.Fatalf("Error loading sessions: %v", err)
	}

	return &league{
		players: players,
		history: history,
		table: rating.ComputeRatings(players, store.RatingSessions(history),
			cfg),
	}
}

func sessionFromArgs(ctx context.Context, name string,
	args []string) *store.Session {

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	storeSpec := storeFlag(fs)
	sessID := fs.String("session", "", "Session ID")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *sessID == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --session ID.")
		fs.Usage()
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	sess, err := st.Session(*sessID)
	if err != nil {
		log.Fatalf("Error fetching session %v: %v", *sessID, err)
	}
	return sess
}
