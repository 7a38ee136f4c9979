/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/doublesleague/internal"
	"github.com/mikeb26/doublesleague/rating"
	"github.com/mikeb26/doublesleague/report"
	"github.com/mikeb26/doublesleague/roster"
	"github.com/mikeb26/doublesleague/schedule"
	"github.com/mikeb26/doublesleague/store"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"players":  handlePlayers,
	"schedule": handleSchedule,
	"score":    handleScore,
	"sessions": handleSessions,
	"show":     handleShow,
	"analyze":  handleAnalyze,
	"ratings":  handleRatings,
	"pairs":    handlePairs,
	"import":   handleImport,
	"export":   handleExport,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handlePlayers(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("players", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	add := fs.String("add", "", "Comma separated names to add to the roster")
	remove := fs.String("remove", "", "Name to remove from the roster")
	importURL := fs.String("import-url", "",
		"Sign-up page whose name column is added to the roster")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	st := openStore(ctx, *storeSpec)

	if *importURL != "" {
		client := internal.NewCachedHttpClient(ctx, internal.LeagueBucket,
			internal.WebCacheTTL)
		names, err := roster.FetchSignups(ctx, client, *importURL)
		if err != nil {
			log.Fatalf("Error importing sign-ups from %v: %v", *importURL, err)
		}
		if err := st.AddPlayers(names...); err != nil {
			log.Fatalf("Error adding players: %v", err)
		}
		fmt.Printf("Imported %v players from %v\n", len(names), *importURL)
	}
	if *add != "" {
		if err := st.AddPlayers(splitList(*add)...); err != nil {
			log.Fatalf("Error adding players: %v", err)
		}
	}
	if *remove != "" {
		if err := st.RemovePlayer(*remove); err != nil {
			log.Fatalf("Error removing player: %v", err)
		}
	}

	players, err := st.Players()
	if err != nil {
		log.Fatalf("Error fetching roster: %v", err)
	}
	if len(players) == 0 {
		fmt.Printf("The roster is empty. Run '%s players --add <names>' to add players\n",
			os.Args[0])
		return
	}
	for _, p := range players {
		fmt.Println(p)
	}
}

func handleSchedule(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	cfg := ratingFlags(fs)
	rounds := fs.Int("rounds", 4, "Number of rounds (1-20)")
	courts := fs.Int("courts", 0, "Number of courts")
	date := fs.String("date", time.Now().Format(internal.DateLayoutISO),
		"Session date")
	players := fs.String("players", "",
		"Comma separated players attending (default: whole roster)")
	dryRun := fs.Bool("dry-run", false, "Print the schedule without saving it")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	// enforce bounds
	if *rounds < 1 {
		*rounds = 1
	} else if *rounds > 20 {
		*rounds = 20
	}
	if *courts <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --courts count.")
		fs.Usage()
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	league := loadLeague(ctx, st, *cfg)
	attending := league.players
	if *players != "" {
		attending = splitList(*players)
	}

	sched, err := schedule.Generate(attending, schedule.Options{
		Rounds:  *rounds,
		Courts:  *courts,
		Ratings: league.table,
		History: store.SeedTracker(league.history),
	})
	if errors.Is(err, schedule.ErrInsufficientPlayers) {
		fmt.Printf("Not enough players: %v players cannot fill %v courts\n",
			len(attending), *courts)
		return
	} else if err != nil {
		log.Fatalf("Error generating schedule: %v", err)
	}
	for _, sk := range sched.Skipped {
		fmt.Printf("Round %v court %v left empty: only %v players available\n",
			sk.Round, sk.Court, sk.Available)
	}

	sess := &store.Session{Date: *date, Courts: *courts, Players: attending,
		Rounds: sched.Rounds}
	if !*dryRun {
		sess, err = st.NewSession(*date, attending, *courts, sched)
		if err != nil {
			log.Fatalf("Error saving session: %v", err)
		}
	}
	fmt.Print(report.BuildScheduleOutput(sess))
}

func handleScore(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	sessID := fs.String("session", "", "Session ID")
	round := fs.Int("round", 0, "Round number")
	court := fs.Int("court", 0, "Court number")
	scoreA := fs.Int("a", 0, "Points scored by the first team")
	scoreB := fs.Int("b", 0, "Points scored by the second team")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *sessID == "" || *round <= 0 || *court <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide --session, --round and --court.")
		fs.Usage()
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	if err := st.RecordScore(*sessID, *round, *court, *scoreA, *scoreB); err != nil {
		log.Fatalf("Error recording score: %v", err)
	}
	fmt.Printf("Recorded round %v court %v: %v-%v\n", *round, *court, *scoreA,
		*scoreB)
}

func handleSessions(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	index, err := st.Sessions()
	if err != nil {
		log.Fatalf("Error fetching sessions: %v", err)
	}
	if len(index) == 0 {
		fmt.Println("No sessions found.")
		return
	}
	for _, m := range index {
		fmt.Printf("%s  %s\n", m.Date, m.ID)
	}
	fmt.Printf("\nRun '%s show --session <ID>' to see a specific session\n",
		os.Args[0])
}

func handleShow(ctx context.Context, args []string) {
	sess := sessionFromArgs(ctx, "show", args)
	fmt.Print(report.BuildScheduleOutput(sess))
}

func handleAnalyze(ctx context.Context, args []string) {
	sess := sessionFromArgs(ctx, "analyze", args)
	fmt.Print(report.BuildSessionAnalysis(sess))
}

func handleRatings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("ratings", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	cfg := ratingFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	league := loadLeague(ctx, st, *cfg)
	fmt.Print(report.BuildLeaderboardOutput(rating.Enhance(league.table.Records)))
}

func handlePairs(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pairs", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	limit := fs.Int("limit", 25, "Maximum pairs to list (0 for all)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	history, err := st.LoadHistory(ctx)
	if err != nil {
		log.Fatalf("Error loading sessions: %v", err)
	}
	fmt.Print(report.BuildPairStatsOutput(store.SeedTracker(history).Pairs(),
		*limit))
}

func handleImport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	file := fs.String("file", "", "CSV file to import")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --file to import.")
		fs.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Error opening %v: %v", *file, err)
	}
	defer f.Close()
	sessions, err := store.ImportCSV(f)
	if err != nil {
		log.Fatalf("Error reading %v: %v", *file, err)
	}

	st := openStore(ctx, *storeSpec)
	for _, sess := range sessions {
		if err := st.AddPlayers(sess.Players...); err != nil {
			log.Fatalf("Error adding players from %v: %v", sess.Date, err)
		}
		if err := st.AddSession(sess); err != nil {
			log.Fatalf("Error saving session %v: %v", sess.Date, err)
		}
		fmt.Printf("Imported %v (%v rounds) as %v\n", sess.Date,
			len(sess.Rounds), sess.ID)
	}
}

func handleExport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	storeSpec := storeFlag(fs)
	file := fs.String("file", "", "Destination CSV file (default stdout)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st := openStore(ctx, *storeSpec)
	history, err := st.LoadHistory(ctx)
	if err != nil {
		log.Fatalf("Error loading sessions: %v", err)
	}

	out := os.Stdout
	if *file != "" {
		out, err = os.Create(*file)
		if err != nil {
			log.Fatalf("Error creating %v: %v", *file, err)
		}
		defer out.Close()
	}
	if err := store.ExportCSV(out, history); err != nil {
		log.Fatalf("Error writing csv: %v", err)
	}
}

func splitList(s string) []string {
	var ret []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ret = append(ret, p)
		}
	}
	return ret
}
