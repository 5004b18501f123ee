package playlist

import "math/rand/v2"

// NoSelection is the selection index when no track is selected.
const NoSelection = -1

// Queue wraps a Playlist with a play order, a selection and the
// repeat/shuffle modes.
//
// The play order equals the base order while shuffle is off. While shuffle
// is on it is a permutation of the base order with the selected track, if
// any, at position 0. The selection is NoSelection or a valid index into
// the play order.
type Queue struct {
	base    *Playlist
	order   []*Track
	current int

	shuffle bool
	repeat  RepeatMode
	cycle   RepeatCycle

	intn func(n int) int
}

// NewQueue creates an empty queue.
// rng drives shuffling; nil uses the auto-seeded global source.
func NewQueue(rng *rand.Rand) *Queue {
	q := &Queue{
		base:    NewPlaylist(),
		order:   make([]*Track, 0),
		current: NoSelection,
		cycle:   CycleOffAllOne,
		intn:    rand.IntN,
	}
	if rng != nil {
		q.intn = rng.IntN
	}
	return q
}

// Current returns the selected track, or nil if none.
func (q *Queue) Current() *Track {
	if q.current < 0 || q.current >= len(q.order) {
		return nil
	}
	return q.order[q.current]
}

// CurrentIndex returns the selection index (NoSelection if none).
func (q *Queue) CurrentIndex() int {
	return q.current
}

// Track returns the track at the given play-order index, or nil.
func (q *Queue) Track(index int) *Track {
	if index < 0 || index >= len(q.order) {
		return nil
	}
	return q.order[index]
}

// Tracks returns a copy of the play order.
func (q *Queue) Tracks() []*Track {
	result := make([]*Track, len(q.order))
	copy(result, q.order)
	return result
}

// BaseTracks returns a copy of the insertion order.
func (q *Queue) BaseTracks() []*Track {
	return q.base.Tracks()
}

// Find returns the track with the given ID and its play-order index,
// or nil and -1.
func (q *Queue) Find(id int64) (*Track, int) {
	for i, t := range q.order {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}

// Len returns the number of tracks.
func (q *Queue) Len() int {
	return len(q.order)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.order) == 0
}

// IsLast returns true if the selection is the last play-order entry.
func (q *Queue) IsLast() bool {
	return q.current >= 0 && q.current == len(q.order)-1
}

// Append adds tracks to the end of the base order.
// With shuffle on the play order is reshuffled around the selected track;
// otherwise the selection keeps pointing at the same track.
func (q *Queue) Append(tracks ...*Track) {
	if len(tracks) == 0 {
		return
	}
	q.base.Add(tracks...)
	if q.shuffle {
		q.reshuffle()
		return
	}
	cur := q.Current()
	q.order = q.base.Tracks()
	q.relocate(cur)
}

// Select sets the selection. Returns false for an out-of-range index.
func (q *Queue) Select(index int) bool {
	if index < 0 || index >= len(q.order) {
		return false
	}
	q.current = index
	return true
}

// Deselect clears the selection.
func (q *Queue) Deselect() {
	q.current = NoSelection
}

// RemoveAt removes the track at the given play-order index from both
// orders. It reports the removed track and whether it was selected.
// Returns nil for an out-of-range index.
func (q *Queue) RemoveAt(index int) (removed *Track, wasCurrent bool) {
	if index < 0 || index >= len(q.order) {
		return nil, false
	}
	removed = q.order[index]
	q.base.RemoveID(removed.ID)
	q.order = append(q.order[:index], q.order[index+1:]...)

	switch {
	case q.current == index:
		q.current = NoSelection
		wasCurrent = true
	case index < q.current:
		q.current--
	}
	return removed, wasCurrent
}

// Clear empties both orders and returns the removed tracks in base order.
func (q *Queue) Clear() []*Track {
	removed := q.base.Tracks()
	q.base.Clear()
	q.order = q.order[:0]
	q.current = NoSelection
	return removed
}

// NextIndex returns the index after the selection, wrapping to 0.
// Returns NoSelection when empty.
func (q *Queue) NextIndex() int {
	if len(q.order) == 0 {
		return NoSelection
	}
	i := q.current + 1
	if i >= len(q.order) {
		i = 0
	}
	return i
}

// PrevIndex returns the index before the selection, wrapping to the last.
// Returns NoSelection when empty.
func (q *Queue) PrevIndex() int {
	if len(q.order) == 0 {
		return NoSelection
	}
	i := q.current - 1
	if i < 0 {
		i = len(q.order) - 1
	}
	return i
}

// Shuffle returns whether shuffle is enabled.
func (q *Queue) Shuffle() bool {
	return q.shuffle
}

// SetShuffle enables or disables shuffle.
// Enabling always draws a new permutation, even when already enabled.
func (q *Queue) SetShuffle(enabled bool) {
	q.shuffle = enabled
	if enabled {
		q.reshuffle()
		return
	}
	q.unshuffle()
}

// RepeatMode returns the current repeat mode.
func (q *Queue) RepeatMode() RepeatMode {
	return q.repeat
}

// SetRepeatMode sets the repeat mode. Unknown modes are ignored.
func (q *Queue) SetRepeatMode(mode RepeatMode) {
	if mode.Valid() {
		q.repeat = mode
	}
}

// SetRepeatCycle sets the order used by CycleRepeat.
func (q *Queue) SetRepeatCycle(c RepeatCycle) {
	if len(c) > 0 {
		q.cycle = c
	}
}

// CycleRepeat advances the repeat mode along the cycle and returns it.
func (q *Queue) CycleRepeat() RepeatMode {
	q.repeat = q.cycle.Next(q.repeat)
	return q.repeat
}

// reshuffle permutes the base order minus the selected track with
// Fisher-Yates and puts the selected track first.
func (q *Queue) reshuffle() {
	cur := q.Current()

	rest := make([]*Track, 0, q.base.Len())
	for _, t := range q.base.tracks {
		if cur != nil && t.ID == cur.ID {
			continue
		}
		rest = append(rest, t)
	}
	for i := len(rest) - 1; i > 0; i-- {
		j := q.intn(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}

	if cur == nil {
		q.order = rest
		q.current = NoSelection
		return
	}
	q.order = append([]*Track{cur}, rest...)
	q.current = 0
}

// unshuffle restores the base order and finds the selected track in it.
func (q *Queue) unshuffle() {
	cur := q.Current()
	q.order = q.base.Tracks()
	if cur == nil {
		q.current = NoSelection
		return
	}
	q.relocate(cur)
	if q.current == NoSelection && len(q.order) > 0 {
		q.current = 0
	}
}

// relocate points the selection at cur by identity, or clears it.
func (q *Queue) relocate(cur *Track) {
	q.current = NoSelection
	if cur == nil {
		return
	}
	if _, i := q.Find(cur.ID); i >= 0 {
		q.current = i
	}
}
