package kvset_test

import (
	"errors"
	"testing"

	"github.com/huaier/go-seqlib/kvset"
)

type insertTest struct {
	name    string
	start   []kvset.Pair[string, int]
	insert  kvset.Pair[string, int]
	wantLen int
}

func TestInsert(t *testing.T) {
	t.Parallel()
	tests := []insertTest{
		{
			name:    "into empty",
			start:   nil,
			insert:  kvset.Pair[string, int]{Key: "a", Value: 1},
			wantLen: 1,
		},
		{
			name: "new key appends",
			start: []kvset.Pair[string, int]{
				{Key: "a", Value: 1}, {Key: "b", Value: 2},
			},
			insert:  kvset.Pair[string, int]{Key: "c", Value: 3},
			wantLen: 3,
		},
		{
			name: "existing key overwrites in place",
			start: []kvset.Pair[string, int]{
				{Key: "a", Value: 1}, {Key: "b", Value: 2},
			},
			insert:  kvset.Pair[string, int]{Key: "a", Value: 9},
			wantLen: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := kvset.New(tt.start...)
			s.Insert(tt.insert)
			if got := s.Len(); got != tt.wantLen {
				t.Errorf("Len after insert; want: %d, got: %d", tt.wantLen, got)
			}
			got, ok := s.Find(tt.insert.Key)
			if !ok || got != tt.insert {
				t.Errorf("Find(%q); want: %v, got: %v (ok=%t)", tt.insert.Key, tt.insert, got, ok)
			}
			assertUniqueKeys(t, s)
		})
	}
}

func assertUniqueKeys(t *testing.T, s *kvset.Set[string, int]) {
	t.Helper()
	seen := map[string]bool{}
	for _, p := range s.IterOrd() {
		if seen[p.Key] {
			t.Errorf("duplicate key %q stored", p.Key)
		}
		seen[p.Key] = true
	}
}

func TestNewCollapsesDuplicates(t *testing.T) {
	s := kvset.New(
		kvset.Pair[string, int]{Key: "a", Value: 1},
		kvset.Pair[string, int]{Key: "b", Value: 2},
		kvset.Pair[string, int]{Key: "a", Value: 3},
	)
	if s.Len() != 2 {
		t.Fatalf("Len; want: 2, got: %d", s.Len())
	}
	if v, ok := s.Lookup("a"); !ok || v != 3 {
		t.Errorf(`Lookup("a"); want: 3, got: %d (ok=%t)`, v, ok)
	}
}

func TestFindAndLookup(t *testing.T) {
	s := kvset.New(
		kvset.Pair[string, int]{Key: "a", Value: 1},
		kvset.Pair[string, int]{Key: "b", Value: 2},
	)
	if p, ok := s.Find("b"); !ok || p.Value != 2 {
		t.Errorf(`Find("b"); want: (b, 2), got: %v (ok=%t)`, p, ok)
	}
	if _, ok := s.Find("zzz"); ok {
		t.Error(`Find("zzz") on absent key; want: not found`)
	}
	if v, ok := s.Lookup("a"); !ok || v != 1 {
		t.Errorf(`Lookup("a"); want: 1, got: %d (ok=%t)`, v, ok)
	}
	if _, ok := s.Lookup("zzz"); ok {
		t.Error(`Lookup("zzz") on absent key; want: not found`)
	}
}

func TestDelete(t *testing.T) {
	s := kvset.New(
		kvset.Pair[string, int]{Key: "a", Value: 1},
		kvset.Pair[string, int]{Key: "b", Value: 2},
		kvset.Pair[string, int]{Key: "c", Value: 3},
	)
	s.Delete("b")
	if s.Len() != 2 {
		t.Errorf("Len after delete; want: 2, got: %d", s.Len())
	}
	if _, ok := s.Find("b"); ok {
		t.Error(`Find("b") after delete; want: not found`)
	}

	// deleting an absent key is a no-op
	s.Delete("zzz")
	if s.Len() != 2 {
		t.Errorf("Len after absent delete; want: 2, got: %d", s.Len())
	}
}

func TestIterOrd(t *testing.T) {
	s := kvset.New(
		kvset.Pair[string, int]{Key: "rust", Value: 13},
		kvset.Pair[string, int]{Key: "ashgrey", Value: 21},
		kvset.Pair[string, int]{Key: "huaier", Value: 19},
	)
	ord := s.IterOrd()
	want := []kvset.Pair[string, int]{
		{Key: "ashgrey", Value: 21},
		{Key: "huaier", Value: 19},
		{Key: "rust", Value: 13},
	}
	if len(ord) != len(want) {
		t.Fatalf("IterOrd length; want: %d, got: %d", len(want), len(ord))
	}
	for i := range want {
		if ord[i] != want[i] {
			t.Errorf("IterOrd[%d]; want: %v, got: %v", i, want[i], ord[i])
		}
	}

	// the snapshot is not a live view
	ord[0] = kvset.Pair[string, int]{Key: "mutated", Value: 0}
	if _, ok := s.Find("mutated"); ok {
		t.Error("mutating the IterOrd snapshot leaked into the set")
	}
}

func TestFindMinMax(t *testing.T) {
	s := kvset.New(
		kvset.Pair[string, int]{Key: "huaier", Value: 19},
		kvset.Pair[string, int]{Key: "ashgrey", Value: 21},
		kvset.Pair[string, int]{Key: "rust", Value: 13},
	)
	min, err := s.FindMin()
	if err != nil || min.Key != "ashgrey" {
		t.Errorf("FindMin; want: ashgrey, got: %v (err=%v)", min, err)
	}
	max, err := s.FindMax()
	if err != nil || max.Key != "rust" {
		t.Errorf("FindMax; want: rust, got: %v (err=%v)", max, err)
	}

	empty := kvset.New[string, int]()
	if _, err := empty.FindMin(); !errors.Is(err, kvset.ErrEmptySet) {
		t.Errorf("FindMin on empty; want: ErrEmptySet, got: %v", err)
	}
	if _, err := empty.FindMax(); !errors.Is(err, kvset.ErrEmptySet) {
		t.Errorf("FindMax on empty; want: ErrEmptySet, got: %v", err)
	}
}

type nextPrevTest struct {
	name     string
	key      string
	next     bool // use FindNext, otherwise FindPrev
	wantKey  string
	wantFind bool
}

func TestFindNextPrev(t *testing.T) {
	t.Parallel()
	// keys in sorted order: ashgrey < huaier < kotlin
	s := kvset.New(
		kvset.Pair[string, int]{Key: "kotlin", Value: 14},
		kvset.Pair[string, int]{Key: "ashgrey", Value: 21},
		kvset.Pair[string, int]{Key: "huaier", Value: 19},
	)
	tests := []nextPrevTest{
		{name: "next of smallest", key: "ashgrey", next: true, wantKey: "huaier", wantFind: true},
		{name: "next of middle", key: "huaier", next: true, wantKey: "kotlin", wantFind: true},
		{name: "next of largest", key: "kotlin", next: true, wantFind: false},
		{name: "prev of smallest", key: "ashgrey", next: false, wantFind: false},
		{name: "prev of middle", key: "huaier", next: false, wantKey: "ashgrey", wantFind: true},
		{name: "prev of largest", key: "kotlin", next: false, wantKey: "huaier", wantFind: true},
		// an absent key never matches, even one falling between stored keys
		{name: "next of absent between keys", key: "bzzz", next: true, wantFind: false},
		{name: "prev of absent between keys", key: "bzzz", next: false, wantFind: false},
		{name: "next of absent beyond keys", key: "zzz", next: true, wantFind: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got kvset.Pair[string, int]
			var ok bool
			if tt.next {
				got, ok = s.FindNext(tt.key)
			} else {
				got, ok = s.FindPrev(tt.key)
			}
			if ok != tt.wantFind {
				t.Fatalf("found; want: %t, got: %t", tt.wantFind, ok)
			}
			if ok && got.Key != tt.wantKey {
				t.Errorf("key; want: %q, got: %q", tt.wantKey, got.Key)
			}
		})
	}
}

func TestEndToEndScenario(t *testing.T) {
	s := kvset.New[string, int]()
	s.Build([]kvset.Pair[string, int]{
		{Key: "ashgrey", Value: 21},
		{Key: "huaier", Value: 19},
		{Key: "rust", Value: 13},
	})

	s.Insert(kvset.Pair[string, int]{Key: "kotlin", Value: 14})
	if s.Len() != 4 {
		t.Fatalf("Len after insert; want: 4, got: %d", s.Len())
	}

	s.Delete("rust")
	if s.Len() != 3 {
		t.Fatalf("Len after delete; want: 3, got: %d", s.Len())
	}
	if _, ok := s.Find("rust"); ok {
		t.Error(`Find("rust") after delete; want: not found`)
	}

	s.Insert(kvset.Pair[string, int]{Key: "ashgrey", Value: 22})
	if s.Len() != 3 {
		t.Errorf("Len after overwrite; want: 3, got: %d", s.Len())
	}
	if p, ok := s.Find("ashgrey"); !ok || p.Value != 22 {
		t.Errorf(`Find("ashgrey"); want: (ashgrey, 22), got: %v (ok=%t)`, p, ok)
	}

	wantOrd := []string{"ashgrey", "huaier", "kotlin"}
	for i, p := range s.IterOrd() {
		if p.Key != wantOrd[i] {
			t.Errorf("IterOrd[%d]; want: %q, got: %q", i, wantOrd[i], p.Key)
		}
	}
}
