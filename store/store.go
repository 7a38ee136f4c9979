/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package store keeps the league roster and its sessions as JSON documents
// in any httpcache.Cache: in memory, on local disk, or in an S3 bucket.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/mikeb26/doublesleague/internal"
	"github.com/mikeb26/doublesleague/s3store"
	"github.com/mikeb26/doublesleague/schedule"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidPlayer = errors.New("invalid player name")
	ErrInvalidCourt  = errors.New("no such court")
	ErrInvalidScore  = errors.New("invalid score")
)

const (
	rosterKey        = "roster"
	sessionIndexKey  = "sessions"
	sessionKeyPrefix = "session/"

	loadConcurrency = 8
)

// Session is one league meeting as persisted: the generated rounds plus the
// scores recorded against them.
type Session struct {
	ID      string           `json:"id"`
	Date    string           `json:"date"`
	Courts  int              `json:"courts"`
	Players []string         `json:"players"`
	Rounds  []schedule.Round `json:"rounds"`
}

type SessionMeta struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

type Store struct {
	kv httpcache.Cache

	// serializes read-modify-write of the roster and index documents
	mu sync.Mutex
}

func New(kv httpcache.Cache) *Store {
	return &Store{kv: kv}
}

// Open returns a Store for a backend spec of the form "mem", "dir:<path>"
// or "s3:<bucket>".
func Open(ctx context.Context, spec string) (*Store, error) {
	kind, arg, _ := strings.Cut(spec, ":")
	switch kind {
	case "mem":
		return New(httpcache.NewMemoryCache()), nil
	case "dir":
		if arg == "" {
			return nil, fmt.Errorf("store.open: %q is missing a directory", spec)
		}
		return New(diskcache.New(arg)), nil
	case "s3":
		if arg == "" {
			arg = internal.LeagueBucket
		}
		c := s3store.New(ctx, arg, "league", true, true)
		if err := c.Init(); err != nil {
			return nil, fmt.Errorf("store.open: %w", err)
		}
		return New(c), nil
	default:
		return nil, fmt.Errorf("store.open: unknown store type %q", spec)
	}
}

func (s *Store) getJSON(key string, v any) (bool, error) {
	data, ok := s.kv.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("unable to parse %v: %w", key, err)
	}
	return true, nil
}

func (s *Store) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("unable to encode %v: %w", key, err)
	}
	s.kv.Set(key, data)
	return nil
}

// Players returns the roster sorted by name.
func (s *Store) Players() ([]string, error) {
	var players []string
	if _, err := s.getJSON(rosterKey, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// AddPlayers adds names to the roster, ignoring ones already present.
func (s *Store) AddPlayers(names ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.Players()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		seen[p] = true
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || strings.Contains(n, ",") {
			return fmt.Errorf("%w: %q", ErrInvalidPlayer, n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		players = append(players, n)
	}
	sort.Strings(players)

	return s.setJSON(rosterKey, players)
}

func (s *Store) RemovePlayer(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.Players()
	if err != nil {
		return err
	}
	idx := sort.SearchStrings(players, name)
	if idx == len(players) || players[idx] != name {
		return fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	players = append(players[:idx], players[idx+1:]...)

	return s.setJSON(rosterKey, players)
}

// Sessions returns the session index, oldest first.
func (s *Store) Sessions() ([]SessionMeta, error) {
	var index []SessionMeta
	if _, err := s.getJSON(sessionIndexKey, &index); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *Store) Session(id string) (*Session, error) {
	var sess Session
	ok, err := s.getJSON(sessionKeyPrefix+id, &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("session %v: %w", id, ErrNotFound)
	}
	return &sess, nil
}

// NewSession persists a freshly generated schedule as a new session dated
// date.
func (s *Store) NewSession(date string, players []string, courts int,
	sched *schedule.Schedule) (*Session, error) {

	sess := &Session{
		Date:    date,
		Courts:  courts,
		Players: append([]string(nil), players...),
		Rounds:  sched.Rounds,
	}
	if err := s.AddSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// AddSession persists sess, assigning it an ID if it has none, and appends
// it to the index.
func (s *Store) AddSession(sess *Session) error {
	date, err := internal.NormalizeDate(sess.Date)
	if err != nil {
		return fmt.Errorf("session date: %w", err)
	}
	sess.Date = date
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.Sessions()
	if err != nil {
		return err
	}
	for _, m := range index {
		if m.ID == sess.ID {
			return fmt.Errorf("session %v already exists", sess.ID)
		}
	}
	if err := s.setJSON(sessionKeyPrefix+sess.ID, sess); err != nil {
		return err
	}
	index = append(index, SessionMeta{ID: sess.ID, Date: sess.Date})
	sort.SliceStable(index, func(i, j int) bool {
		return index[i].Date < index[j].Date
	})

	return s.setJSON(sessionIndexKey, index)
}

func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.Sessions()
	if err != nil {
		return err
	}
	kept := index[:0]
	found := false
	for _, m := range index {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("session %v: %w", id, ErrNotFound)
	}
	s.kv.Delete(sessionKeyPrefix + id)

	return s.setJSON(sessionIndexKey, kept)
}

// RecordScore sets the points of both teams on one court of a session.
// round and court are 1-based.
func (s *Store) RecordScore(id string, round int, court int, scoreA int,
	scoreB int) error {

	if scoreA < 0 || scoreB < 0 {
		return fmt.Errorf("%w: %v-%v", ErrInvalidScore, scoreA, scoreB)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	ct := sess.court(round, court)
	if ct == nil {
		return fmt.Errorf("%w: round %v court %v in session %v",
			ErrInvalidCourt, round, court, id)
	}
	ct.Teams[0].Points = scoreA
	ct.Teams[1].Points = scoreB

	return s.setJSON(sessionKeyPrefix+id, sess)
}

func (sess *Session) court(round int, court int) *schedule.Court {
	for ri := range sess.Rounds {
		if sess.Rounds[ri].Number != round {
			continue
		}
		for ci := range sess.Rounds[ri].Courts {
			if sess.Rounds[ri].Courts[ci].Number == court {
				return &sess.Rounds[ri].Courts[ci]
			}
		}
	}
	return nil
}

// LoadHistory fetches every indexed session, in index order.
func (s *Store) LoadHistory(ctx context.Context) ([]*Session, error) {
	index, err := s.Sessions()
	if err != nil {
		return nil, err
	}

	sessions := make([]*Session, len(index))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i := range index {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sess, err := s.Session(index[i].ID)
			if err != nil {
				return err
			}
			sessions[i] = sess
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("store.loadhistory: %w", err)
	}

	return sessions, nil
}
