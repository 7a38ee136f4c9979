/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikeb26/doublesleague/internal"
	"github.com/mikeb26/doublesleague/schedule"
)

var csvHeader = []string{"date", "round", "court", "team_a_1", "team_a_2",
	"team_b_1", "team_b_2", "score_a", "score_b"}

// ExportCSV writes one row per court of every session.
func ExportCSV(w io.Writer, sessions []*Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, sess := range sessions {
		for _, r := range sess.Rounds {
			for _, c := range r.Courts {
				a, b := c.Teams[0], c.Teams[1]
				row := []string{sess.Date, strconv.Itoa(c.Round),
					strconv.Itoa(c.Number), a.Players[0], a.Players[1],
					b.Players[0], b.Players[1], strconv.Itoa(a.Points),
					strconv.Itoa(b.Points)}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// ImportCSV parses rows written by ExportCSV, or by hand, into sessions. Rows
// sharing a date form one session; sessions come back in first-seen order
// and courts within a round in file order.
func ImportCSV(r io.Reader) ([]*Session, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	var sessions []*Session
	byDate := make(map[string]*Session)
	line := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("store.importcsv: %w", err)
		}
		if line == 1 && strings.EqualFold(row[0], csvHeader[0]) {
			continue
		}
		date, ct, err := parseCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("store.importcsv: line %v: %w", line, err)
		}

		sess, ok := byDate[date]
		if !ok {
			sess = &Session{Date: date}
			byDate[date] = sess
			sessions = append(sessions, sess)
		}
		sess.addCourt(ct)
	}

	return sessions, nil
}

func parseCSVRow(row []string) (string, schedule.Court, error) {
	var ct schedule.Court

	date, err := internal.NormalizeDate(strings.TrimSpace(row[0]))
	if err != nil {
		return "", ct, err
	}
	nums := make([]int, 0, 4)
	for _, idx := range []int{1, 2, 7, 8} {
		n, err := strconv.Atoi(strings.TrimSpace(row[idx]))
		if err != nil {
			return "", ct, fmt.Errorf("column %v: %w", csvHeader[idx], err)
		}
		nums = append(nums, n)
	}
	if nums[0] < 1 || nums[1] < 1 {
		return "", ct, fmt.Errorf("%w: round %v court %v", ErrInvalidCourt,
			nums[0], nums[1])
	}
	if nums[2] < 0 || nums[3] < 0 {
		return "", ct, fmt.Errorf("%w: %v-%v", ErrInvalidScore, nums[2], nums[3])
	}
	for idx := 3; idx <= 6; idx++ {
		if strings.TrimSpace(row[idx]) == "" {
			return "", ct, fmt.Errorf("%w: empty %v", ErrInvalidPlayer,
				csvHeader[idx])
		}
	}

	ct.Round = nums[0]
	ct.Number = nums[1]
	ct.Teams[0] = schedule.Team{
		Players: [2]string{strings.TrimSpace(row[3]), strings.TrimSpace(row[4])},
		Points:  nums[2],
	}
	ct.Teams[1] = schedule.Team{
		Players: [2]string{strings.TrimSpace(row[5]), strings.TrimSpace(row[6])},
		Points:  nums[3],
	}

	return date, ct, nil
}

func (sess *Session) addCourt(ct schedule.Court) {
	var round *schedule.Round
	for i := range sess.Rounds {
		if sess.Rounds[i].Number == ct.Round {
			round = &sess.Rounds[i]
			break
		}
	}
	if round == nil {
		sess.Rounds = append(sess.Rounds, schedule.Round{Number: ct.Round})
		round = &sess.Rounds[len(sess.Rounds)-1]
	}
	round.Courts = append(round.Courts, ct)
	if len(round.Courts) > sess.Courts {
		sess.Courts = len(round.Courts)
	}
	for _, team := range ct.Teams {
		for _, p := range team.Players {
			if !containsString(sess.Players, p) {
				sess.Players = append(sess.Players, p)
			}
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
