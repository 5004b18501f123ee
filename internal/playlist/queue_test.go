package playlist

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func tracks(ids ...int64) []*Track {
	out := make([]*Track, len(ids))
	for i, id := range ids {
		out[i] = &Track{ID: id}
	}
	return out
}

func ids(ts []*Track) []int64 {
	out := make([]int64, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewQueue(t *testing.T) {
	q := NewQueue(nil)

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.CurrentIndex() != NoSelection {
		t.Errorf("CurrentIndex() = %d, want NoSelection", q.CurrentIndex())
	}
	if q.Current() != nil {
		t.Error("Current() should be nil for empty queue")
	}
	if q.NextIndex() != NoSelection || q.PrevIndex() != NoSelection {
		t.Error("navigation on empty queue should return NoSelection")
	}
}

func TestQueue_Append_KeepsSelectionIdentity(t *testing.T) {
	q := NewQueue(nil)
	q.Append(tracks(1, 2, 3)...)
	q.Select(1)

	q.Append(tracks(4, 5)...)

	if q.Len() != 5 {
		t.Errorf("Len() = %d, want 5", q.Len())
	}
	if q.Current().ID != 2 {
		t.Errorf("Current().ID = %d, want 2", q.Current().ID)
	}
}

func TestQueue_Append_NoSelectionStaysNone(t *testing.T) {
	q := NewQueue(nil)

	q.Append(tracks(1, 2)...)

	if q.CurrentIndex() != NoSelection {
		t.Errorf("CurrentIndex() = %d, want NoSelection", q.CurrentIndex())
	}
}

func TestQueue_Select_Invalid(t *testing.T) {
	q := NewQueue(nil)
	q.Append(tracks(1)...)

	for _, i := range []int{-1, 1, 5} {
		if q.Select(i) {
			t.Errorf("Select(%d) should fail", i)
		}
	}
	if q.CurrentIndex() != NoSelection {
		t.Errorf("CurrentIndex() = %d, want NoSelection", q.CurrentIndex())
	}
}

func TestQueue_NextPrev_Wrap(t *testing.T) {
	q := NewQueue(nil)
	q.Append(tracks(1, 2, 3)...)

	tests := []struct {
		name     string
		current  int
		wantNext int
		wantPrev int
	}{
		{"first", 0, 1, 2},
		{"middle", 1, 2, 0},
		{"last", 2, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q.Select(tt.current)
			if got := q.NextIndex(); got != tt.wantNext {
				t.Errorf("NextIndex() = %d, want %d", got, tt.wantNext)
			}
			if got := q.PrevIndex(); got != tt.wantPrev {
				t.Errorf("PrevIndex() = %d, want %d", got, tt.wantPrev)
			}
		})
	}
}

func TestQueue_NextPrev_FromNoSelection(t *testing.T) {
	q := NewQueue(nil)
	q.Append(tracks(1, 2, 3)...)

	if got := q.NextIndex(); got != 0 {
		t.Errorf("NextIndex() = %d, want 0", got)
	}
	if got := q.PrevIndex(); got != 2 {
		t.Errorf("PrevIndex() = %d, want 2", got)
	}
}

func TestQueue_Next_CyclesBackToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		q := NewQueue(seeded())
		for i := range n {
			q.Append(&Track{ID: int64(i + 1)})
		}
		for start := range n {
			q.Select(start)
			for range n {
				q.Select(q.NextIndex())
			}
			if q.CurrentIndex() != start {
				t.Errorf("n=%d start=%d: after %d nexts index = %d", n, start, n, q.CurrentIndex())
			}
		}
	}
}

func TestQueue_RemoveAt(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		remove      int
		wantCurrent int
		wantWasCur  bool
		wantIDs     []int64
	}{
		{"before selection", 2, 0, 1, false, []int64{2, 3, 4}},
		{"selected", 1, 1, NoSelection, true, []int64{1, 3, 4}},
		{"after selection", 1, 3, 1, false, []int64{1, 2, 3}},
		{"no selection", NoSelection, 0, NoSelection, false, []int64{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue(nil)
			q.Append(tracks(1, 2, 3, 4)...)
			if tt.current != NoSelection {
				q.Select(tt.current)
			}

			removed, wasCur := q.RemoveAt(tt.remove)

			if removed == nil {
				t.Fatal("RemoveAt returned nil")
			}
			if wasCur != tt.wantWasCur {
				t.Errorf("wasCurrent = %v, want %v", wasCur, tt.wantWasCur)
			}
			if q.CurrentIndex() != tt.wantCurrent {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.wantCurrent)
			}
			if got := ids(q.Tracks()); !slices.Equal(got, tt.wantIDs) {
				t.Errorf("play order = %v, want %v", got, tt.wantIDs)
			}
			if got := ids(q.BaseTracks()); !slices.Equal(got, tt.wantIDs) {
				t.Errorf("base order = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestQueue_RemoveAt_OutOfRange(t *testing.T) {
	q := NewQueue(nil)
	q.Append(tracks(1, 2)...)
	q.Select(1)

	removed, _ := q.RemoveAt(5)

	if removed != nil {
		t.Error("RemoveAt out of range should return nil")
	}
	if q.Len() != 2 || q.CurrentIndex() != 1 {
		t.Error("RemoveAt out of range changed the queue")
	}
}

func TestQueue_RemoveAt_ShuffledRemovesByIdentity(t *testing.T) {
	q := NewQueue(seeded())
	q.Append(tracks(1, 2, 3, 4, 5)...)
	q.SetShuffle(true)

	victim := q.Track(2)
	q.RemoveAt(2)

	if _, i := q.Find(victim.ID); i != -1 {
		t.Error("removed track still in play order")
	}
	for _, tr := range q.BaseTracks() {
		if tr.ID == victim.ID {
			t.Error("removed track still in base order")
		}
	}
	if q.Len() != 4 || len(q.BaseTracks()) != 4 {
		t.Errorf("lengths = %d/%d, want 4/4", q.Len(), len(q.BaseTracks()))
	}
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue(nil)
	q.Append(tracks(1, 2, 3)...)
	q.Select(1)

	removed := q.Clear()

	if got := ids(removed); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Errorf("removed = %v, want [1 2 3]", got)
	}
	if !q.IsEmpty() || q.CurrentIndex() != NoSelection {
		t.Error("queue not reset after Clear")
	}
}

func TestQueue_IsLast(t *testing.T) {
	q := NewQueue(nil)
	if q.IsLast() {
		t.Error("empty queue IsLast should be false")
	}
	q.Append(tracks(1, 2)...)
	if q.IsLast() {
		t.Error("no selection IsLast should be false")
	}
	q.Select(1)
	if !q.IsLast() {
		t.Error("IsLast should be true at last index")
	}
}

func TestQueue_Shuffle_CurrentMovesToFront(t *testing.T) {
	q := NewQueue(seeded())
	q.Append(tracks(1, 2, 3, 4, 5, 6)...)
	q.Select(3)
	cur := q.Current()

	q.SetShuffle(true)

	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
	if q.Track(0) != cur {
		t.Errorf("Track(0).ID = %d, want %d", q.Track(0).ID, cur.ID)
	}
	got := ids(q.Tracks())
	slices.Sort(got)
	if !slices.Equal(got, []int64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("shuffled order is not a permutation: %v", got)
	}
}

func TestQueue_Shuffle_NoSelection(t *testing.T) {
	q := NewQueue(seeded())
	q.Append(tracks(1, 2, 3)...)

	q.SetShuffle(true)

	if q.CurrentIndex() != NoSelection {
		t.Errorf("CurrentIndex() = %d, want NoSelection", q.CurrentIndex())
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
}

func TestQueue_Shuffle_RoundTrip(t *testing.T) {
	for seed := range uint64(20) {
		q := NewQueue(rand.New(rand.NewPCG(seed, seed+1)))
		q.Append(tracks(1, 2, 3, 4, 5, 6, 7, 8)...)
		q.Select(int(seed % 8))
		want := q.Current().ID

		q.SetShuffle(true)
		q.SetShuffle(false)

		if got := ids(q.Tracks()); !slices.Equal(got, ids(q.BaseTracks())) {
			t.Fatalf("seed %d: play order %v != base order", seed, got)
		}
		if q.Current().ID != want {
			t.Errorf("seed %d: Current().ID = %d, want %d", seed, q.Current().ID, want)
		}
	}
}

func TestQueue_Shuffle_RoundTripNoSelection(t *testing.T) {
	q := NewQueue(seeded())
	q.Append(tracks(1, 2, 3)...)

	q.SetShuffle(true)
	q.SetShuffle(false)

	if q.CurrentIndex() != NoSelection {
		t.Errorf("CurrentIndex() = %d, want NoSelection", q.CurrentIndex())
	}
	if got := ids(q.Tracks()); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Errorf("order = %v, want [1 2 3]", got)
	}
}

func TestQueue_Shuffle_AppendReshuffles(t *testing.T) {
	q := NewQueue(seeded())
	q.Append(tracks(1, 2, 3)...)
	q.Select(2)
	q.SetShuffle(true)

	q.Append(tracks(4, 5, 6)...)

	if q.Current().ID != 3 || q.CurrentIndex() != 0 {
		t.Errorf("current = %d at %d, want 3 at 0", q.Current().ID, q.CurrentIndex())
	}
	if q.Len() != 6 {
		t.Errorf("Len() = %d, want 6", q.Len())
	}
	if got := ids(q.BaseTracks()); !slices.Equal(got, []int64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("base order = %v", got)
	}
}

// The Fisher-Yates draw must be unbiased: every permutation of three
// tracks should appear with roughly equal frequency.
func TestQueue_Shuffle_Uniform(t *testing.T) {
	const rounds = 6000
	q := NewQueue(seeded())
	q.Append(tracks(1, 2, 3)...)

	counts := map[[3]int64]int{}
	for range rounds {
		q.SetShuffle(true)
		o := q.Tracks()
		counts[[3]int64{o[0].ID, o[1].ID, o[2].ID}]++
	}

	if len(counts) != 6 {
		t.Fatalf("saw %d distinct permutations, want 6", len(counts))
	}
	for perm, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("permutation %v drawn %d times, expected about 1000", perm, n)
		}
	}
}

func TestQueue_CycleRepeat(t *testing.T) {
	q := NewQueue(nil)

	if q.RepeatMode() != RepeatOff {
		t.Fatalf("initial mode = %v, want Off", q.RepeatMode())
	}
	want := []RepeatMode{RepeatAll, RepeatOne, RepeatOff}
	for _, w := range want {
		if got := q.CycleRepeat(); got != w {
			t.Errorf("CycleRepeat() = %v, want %v", got, w)
		}
	}

	q.SetRepeatCycle(CycleOffOneAll)
	if got := q.CycleRepeat(); got != RepeatOne {
		t.Errorf("CycleRepeat() with off-one-all = %v, want One", got)
	}
}

func TestQueue_SetRepeatMode_IgnoresInvalid(t *testing.T) {
	q := NewQueue(nil)
	q.SetRepeatMode(RepeatOne)
	q.SetRepeatMode(RepeatMode(7))

	if q.RepeatMode() != RepeatOne {
		t.Errorf("RepeatMode() = %v, want One", q.RepeatMode())
	}
}
