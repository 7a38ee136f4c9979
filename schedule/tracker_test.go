/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package schedule

import (
	"reflect"
	"testing"
)

func TestTracker_CommitIsSymmetric(t *testing.T) {
	tr := NewTracker()
	tr.Commit([2]string{"a", "b"}, [2]string{"c", "d"})

	for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}, {"c", "d"}, {"d", "c"}} {
		if tr.Teammate(pair[0], pair[1]) != 1 {
			t.Errorf("teammate %v: got %v want 1", pair,
				tr.Teammate(pair[0], pair[1]))
		}
		if tr.SessionTeammate(pair[0], pair[1]) != 1 {
			t.Errorf("session teammate %v: got %v want 1", pair,
				tr.SessionTeammate(pair[0], pair[1]))
		}
		if tr.Opponent(pair[0], pair[1]) != 0 {
			t.Errorf("teammates %v should not be opponents", pair)
		}
	}
	for _, a := range []string{"a", "b"} {
		for _, b := range []string{"c", "d"} {
			if tr.Opponent(a, b) != 1 || tr.Opponent(b, a) != 1 {
				t.Errorf("opponent %v/%v: got %v/%v want 1", a, b,
					tr.Opponent(a, b), tr.Opponent(b, a))
			}
			if tr.SessionOpponent(a, b) != 1 {
				t.Errorf("session opponent %v/%v: got %v want 1", a, b,
					tr.SessionOpponent(a, b))
			}
		}
	}
}

func TestTracker_SeedAndReset(t *testing.T) {
	tr := NewTracker()
	tr.Seed([2]string{"a", "b"}, [2]string{"c", "d"})
	if tr.Teammate("a", "b") != 1 || tr.SessionTeammate("a", "b") != 0 {
		t.Errorf("seed should only touch global counts")
	}

	tr.Commit([2]string{"a", "c"}, [2]string{"b", "d"})
	tr.ResetSession()
	if tr.SessionTeammate("a", "c") != 0 || tr.SessionOpponent("a", "b") != 0 {
		t.Errorf("session counts survived reset")
	}
	if tr.Teammate("a", "c") != 1 || tr.Opponent("a", "b") != 1 {
		t.Errorf("global counts lost on reset")
	}
}

func TestTracker_CloneIsIndependent(t *testing.T) {
	tr := NewTracker()
	tr.Commit([2]string{"a", "b"}, [2]string{"c", "d"})
	cp := tr.Clone()
	cp.Commit([2]string{"a", "b"}, [2]string{"c", "d"})

	if tr.Teammate("a", "b") != 1 || cp.Teammate("a", "b") != 2 {
		t.Errorf("clone shares state: orig=%v clone=%v",
			tr.Teammate("a", "b"), cp.Teammate("a", "b"))
	}
}

func TestTracker_Pairs(t *testing.T) {
	tr := NewTracker()
	tr.Seed([2]string{"b", "a"}, [2]string{"c", "d"})
	tr.Seed([2]string{"a", "b"}, [2]string{"d", "e"})

	got := tr.Pairs()
	want := []PairStat{
		{A: "a", B: "b", Teammates: 2},
		{A: "c", B: "d", Teammates: 1},
		{A: "d", B: "e", Teammates: 1},
		{A: "a", B: "d", Opponents: 2},
		{A: "b", B: "d", Opponents: 2},
		{A: "a", B: "c", Opponents: 1},
		{A: "a", B: "e", Opponents: 1},
		{A: "b", B: "c", Opponents: 1},
		{A: "b", B: "e", Opponents: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pairs:\n got %+v\nwant %+v", got, want)
	}
}
