package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/player"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/source"
	"github.com/llehouerou/spindle/internal/state"
	"github.com/llehouerou/spindle/internal/tags"
)

// Verify Controller implements Service at compile time.
var _ Service = (*Controller)(nil)

// Controller owns the playlist, its selection and modes, and drives the
// player. All operations run under one mutex; player callbacks and
// artwork results re-enter through the same lock.
type Controller struct {
	mu sync.Mutex

	player player.Interface
	queue  *playlist.Queue
	store  state.Store
	art    ArtworkResolver
	log    *slog.Logger

	maxTracks int
	cycle     playlist.RepeatCycle
	rng       *rand.Rand

	state  State
	loaded *playlist.Track // track handed to the player
	nextID int64

	artRequested map[*playlist.Track]bool
	artWG        sync.WaitGroup

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a controller driving p and registers for its callbacks.
func New(p player.Interface, opts ...Option) *Controller {
	c := &Controller{
		player:       p,
		log:          slog.New(slog.DiscardHandler),
		maxTracks:    DefaultMaxTracks,
		state:        StateStopped,
		artRequested: make(map[*playlist.Track]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.queue = playlist.NewQueue(c.rng)
	if c.cycle != nil {
		c.queue.SetRepeatCycle(c.cycle)
	}

	p.OnFinished(c.trackFinished)
	p.OnStateChange(c.playerStateChanged)
	return c
}

// AddTracks appends the MP3 candidates to the playlist and returns how
// many were added. Other candidates are dropped and released.
//
// The batch is all or nothing: over capacity it fails with a
// *CapacityError, and a store failure leaves the playlist untouched.
// If nothing was selected the first track starts playing.
func (c *Controller) AddTracks(candidates []source.Candidate) (int, error) {
	accepted := make([]source.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand.IsMP3() && cand.Source != nil {
			accepted = append(accepted, cand)
			continue
		}
		c.log.Debug("skipping unsupported file", "name", cand.Name, "mediaType", cand.MediaType)
		release(cand.Source)
	}
	if len(accepted) == 0 {
		return 0, nil
	}

	// Tag reads touch the files; keep them outside the lock.
	titles := make([]string, len(accepted))
	for i, cand := range accepted {
		titles[i] = readTitle(cand.Source)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		releaseCandidates(accepted)
		return 0, ErrClosed
	}

	if c.queue.Len()+len(accepted) > c.maxTracks {
		err := &CapacityError{Current: c.queue.Len(), Adding: len(accepted), Max: c.maxTracks}
		releaseCandidates(accepted)
		c.log.Warn("rejected tracks", "adding", len(accepted), "error", err)
		c.emitError(ErrorEvent{Operation: "add", Err: err})
		return 0, err
	}

	ids, err := c.assignIDs(accepted)
	if err != nil {
		releaseCandidates(accepted)
		err = fmt.Errorf("store tracks: %w", err)
		c.log.Error("add tracks", "error", err)
		c.emitError(ErrorEvent{Operation: "add", Err: err})
		return 0, err
	}

	tracks := make([]*playlist.Track, len(accepted))
	for i, cand := range accepted {
		tracks[i] = &playlist.Track{
			ID:        ids[i],
			Name:      cand.Name,
			Title:     titles[i],
			MediaType: cand.MediaType,
			Source:    cand.Source,
		}
	}

	hadSelection := c.queue.Current() != nil
	c.queue.Append(tracks...)
	c.log.Info("added tracks", "count", len(tracks), "total", c.queue.Len())
	c.emitQueue()

	if !hadSelection {
		c.playIndex(0, "add")
	}
	return len(tracks), nil
}

// assignIDs returns identities for a batch: store row ids when a store is
// configured, otherwise a local sequence.
func (c *Controller) assignIDs(cands []source.Candidate) ([]int64, error) {
	if c.store == nil {
		ids := make([]int64, len(cands))
		for i := range cands {
			c.nextID++
			ids[i] = c.nextID
		}
		return ids, nil
	}

	recs := make([]state.TrackRecord, len(cands))
	for i, cand := range cands {
		recs[i] = state.TrackRecord{
			Name:      cand.Name,
			MediaType: cand.MediaType,
			Location:  cand.Source.Location(),
		}
	}
	return c.store.AddAll(recs)
}

// RemoveTrack removes the track at a play-order index and releases its
// source. Removing the selected track stops playback. Out-of-range
// indexes are ignored.
func (c *Controller) RemoveTrack(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	t := c.queue.Track(index)
	if t == nil {
		return nil
	}
	if c.store != nil {
		if err := c.store.Delete(t.ID); err != nil {
			err = fmt.Errorf("delete track %d: %w", t.ID, err)
			c.emitError(ErrorEvent{Operation: "remove", Track: t.Name, Err: err})
			return err
		}
	}

	removed, wasCurrent := c.queue.RemoveAt(index)
	c.discard(removed)
	if wasCurrent || removed == c.loaded {
		c.stopPlayer()
	}
	c.log.Debug("removed track", "trackId", removed.ID, "wasCurrent", wasCurrent)
	c.emitQueue()
	return nil
}

// ClearAll removes every track and stops playback.
func (c *Controller) ClearAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.store != nil {
		if err := c.store.Clear(); err != nil {
			err = fmt.Errorf("clear tracks: %w", err)
			c.emitError(ErrorEvent{Operation: "clear", Err: err})
			return err
		}
	}

	for _, t := range c.queue.Clear() {
		c.discard(t)
	}
	c.stopPlayer()
	c.log.Info("cleared playlist")
	c.emitQueue()
	return nil
}

// Hydrate restores the playlist and modes from the store. Records whose
// file is gone are dropped from the store. Nothing starts playing.
func (c *Controller) Hydrate() error {
	if c.store == nil {
		return nil
	}

	recs, err := c.store.ListAll()
	if err != nil {
		return fmt.Errorf("list tracks: %w", err)
	}
	modes, err := c.store.GetModes()
	if err != nil {
		return fmt.Errorf("load modes: %w", err)
	}

	tracks := make([]*playlist.Track, 0, len(recs))
	for _, rec := range recs {
		fi, err := os.Stat(rec.Location)
		if err != nil || !fi.Mode().IsRegular() {
			c.log.Warn("dropping missing track", "trackId", rec.ID, "location", rec.Location)
			if err := c.store.Delete(rec.ID); err != nil {
				c.log.Error("delete missing track", "trackId", rec.ID, "error", err)
			}
			continue
		}
		src := source.NewFile(rec.Location, fi.Size())
		tracks = append(tracks, &playlist.Track{
			ID:        rec.ID,
			Name:      rec.Name,
			Title:     readTitle(src),
			MediaType: rec.MediaType,
			Source:    src,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if room := c.maxTracks - c.queue.Len(); len(tracks) > room {
		c.log.Warn("playlist over capacity, not restoring all tracks",
			"stored", len(tracks), "max", c.maxTracks)
		for _, t := range tracks[max(room, 0):] {
			release(t.Source)
		}
		tracks = tracks[:max(room, 0)]
	}

	c.queue.Append(tracks...)
	if modes != nil {
		c.queue.SetRepeatMode(playlist.RepeatMode(modes.RepeatMode))
		if modes.Shuffle != c.queue.Shuffle() {
			c.queue.SetShuffle(modes.Shuffle)
		}
	}
	c.log.Info("restored playlist", "tracks", len(tracks),
		"repeat", c.queue.RepeatMode().String(), "shuffle", c.queue.Shuffle())
	c.emitQueue()
	c.emitMode()
	return nil
}

// SelectTrack selects the track at a play-order index. Selecting the
// playing track pauses it and selecting the paused track resumes it;
// any other index loads and plays that track. Returns false for an
// out-of-range index.
func (c *Controller) SelectTrack(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	t := c.queue.Track(index)
	if t == nil {
		return false
	}
	if index == c.queue.CurrentIndex() && t == c.loaded {
		switch c.state {
		case StatePlaying:
			c.player.Pause()
			c.setState(StatePaused)
			return true
		case StatePaused:
			c.player.Play()
			c.setState(StatePlaying)
			return true
		case StateStopped:
		}
	}
	c.playIndex(index, "select")
	return true
}

// Next plays the following track, wrapping to the first.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next()
}

func (c *Controller) next() {
	if c.closed || c.queue.IsEmpty() {
		return
	}
	c.playIndex(c.queue.NextIndex(), "next")
}

// Prev plays the preceding track, wrapping to the last.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.queue.IsEmpty() {
		return
	}
	c.playIndex(c.queue.PrevIndex(), "prev")
}

// TogglePlayPause pauses or resumes playback, starting the first track
// when nothing is selected.
func (c *Controller) TogglePlayPause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.queue.IsEmpty() {
		return ErrEmptyPlaylist
	}
	cur := c.queue.CurrentIndex()
	switch {
	case cur == playlist.NoSelection:
		c.playIndex(0, "play")
	case c.state == StatePlaying:
		c.player.Pause()
		c.setState(StatePaused)
	case c.state == StatePaused && c.loaded == c.queue.Current():
		c.player.Play()
		c.setState(StatePlaying)
	default:
		c.playIndex(cur, "play")
	}
	return nil
}

// Stop stops playback and keeps the selection.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stopPlayer()
}

// OnTrackEnded handles the end of the current track according to the
// repeat mode. With repeat off the last track ends the session: playback
// stops and the selection is cleared.
func (c *Controller) OnTrackEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trackEnded()
}

// trackFinished handles the player's end-of-stream callback for src. It is
// dropped when src is no longer the loaded source or the player has moved
// on, which happens when a load or stop won the race against the callback.
func (c *Controller) trackFinished(src source.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded == nil || c.loaded.Source != src || c.player.State() != player.Stopped {
		c.log.Debug("dropping stale end of track")
		return
	}
	c.trackEnded()
}

func (c *Controller) trackEnded() {
	if c.closed || c.queue.Current() == nil {
		return
	}

	switch c.queue.RepeatMode() {
	case playlist.RepeatOne:
		c.playIndex(c.queue.CurrentIndex(), "repeat")
	case playlist.RepeatAll:
		c.next()
	case playlist.RepeatOff:
		if !c.queue.IsLast() {
			c.next()
			return
		}
		prev := c.loaded
		c.stopPlayer()
		c.queue.Deselect()
		c.log.Debug("reached end of playlist")
		c.emitTrackChange(prev, nil, playlist.NoSelection)
		c.emitQueue()
	}
}

// OnPlayStateChanged records a play/pause change the player made on its own.
func (c *Controller) OnPlayStateChanged(playing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.loaded == nil {
		return
	}
	if playing {
		c.setState(StatePlaying)
	} else if c.state == StatePlaying {
		c.setState(StatePaused)
	}
}

// playerStateChanged routes the player's own state changes: play/pause
// through OnPlayStateChanged, a stop by dropping the loaded track.
func (c *Controller) playerStateChanged(ps player.State) {
	if s := stateFromPlayer(ps); s != StateStopped {
		c.OnPlayStateChanged(s == StatePlaying)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.loaded = nil
	c.setState(StateStopped)
}

// RepeatMode returns the current repeat mode.
func (c *Controller) RepeatMode() playlist.RepeatMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.RepeatMode()
}

// SetRepeatMode sets the repeat mode. Unknown modes are ignored.
func (c *Controller) SetRepeatMode(mode playlist.RepeatMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !mode.Valid() || mode == c.queue.RepeatMode() {
		return
	}
	c.queue.SetRepeatMode(mode)
	c.modesChanged()
}

// CycleRepeatMode advances the repeat mode along the configured cycle.
func (c *Controller) CycleRepeatMode() playlist.RepeatMode {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.queue.RepeatMode()
	}
	mode := c.queue.CycleRepeat()
	c.modesChanged()
	return mode
}

// Shuffle returns whether shuffle is enabled.
func (c *Controller) Shuffle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Shuffle()
}

// SetShuffle enables or disables shuffle without interrupting playback.
// Enabling draws a new order with the selected track first.
func (c *Controller) SetShuffle(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setShuffle(enabled)
}

// ToggleShuffle flips shuffle and returns the new value.
func (c *Controller) ToggleShuffle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.queue.Shuffle()
	}
	enabled := !c.queue.Shuffle()
	c.setShuffle(enabled)
	return enabled
}

func (c *Controller) setShuffle(enabled bool) {
	if c.closed {
		return
	}
	c.queue.SetShuffle(enabled)
	c.emitQueue()
	c.modesChanged()
}

// Current returns the selected track, or nil if none.
func (c *Controller) Current() *Track {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.queue.Current()
	if t == nil {
		return nil
	}
	v := trackFrom(t)
	return &v
}

// State returns the playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Len returns the number of tracks.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close stops playback, waits for pending artwork lookups and closes all
// subscriptions. Tracks and their sources stay as they are. Afterwards
// every operation is a no-op; those returning an error report ErrClosed.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.player.Stop()
	c.loaded = nil
	c.state = StateStopped
	c.mu.Unlock()

	c.artWG.Wait()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return nil
}

// playIndex selects index, loads its track and starts playback.
// A load failure keeps the selection and leaves playback stopped.
func (c *Controller) playIndex(index int, op string) {
	t := c.queue.Track(index)
	if t == nil {
		return
	}
	c.queue.Select(index)
	prev := c.loaded

	if err := c.player.Load(t.Source); err != nil {
		c.loaded = nil
		c.setState(StateStopped)
		c.log.Error("load track", "trackId", t.ID, "name", t.Name, "error", err)
		c.emitError(ErrorEvent{Operation: op, Track: t.Name, Err: err})
		c.emitTrackChange(prev, t, index)
		return
	}
	c.loaded = t
	c.player.Play()
	c.setState(StatePlaying)
	c.log.Debug("playing track", "trackId", t.ID, "index", index)

	if prev != t {
		c.emitTrackChange(prev, t, index)
	}
	c.requestArtwork(t)
}

// stopPlayer stops the player and forgets the loaded track.
func (c *Controller) stopPlayer() {
	c.player.Stop()
	c.loaded = nil
	c.setState(StateStopped)
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	prev := c.state
	c.state = s
	c.emitState(StateChange{Previous: prev, Current: s})
}

// discard releases a removed track's source and forgets pending lookups.
func (c *Controller) discard(t *playlist.Track) {
	release(t.Source)
	delete(c.artRequested, t)
}

func (c *Controller) modesChanged() {
	c.emitMode()
	if c.store != nil {
		c.store.SaveModes(state.Modes{
			RepeatMode: int(c.queue.RepeatMode()),
			Shuffle:    c.queue.Shuffle(),
		})
	}
}

// requestArtwork starts a background lookup for t unless one already ran.
func (c *Controller) requestArtwork(t *playlist.Track) {
	if c.art == nil || t.Artwork != nil || c.artRequested[t] {
		return
	}
	c.artRequested[t] = true
	c.artWG.Add(1)
	go c.fetchArtwork(t)
}

func (c *Controller) fetchArtwork(t *playlist.Track) {
	defer c.artWG.Done()

	img, err := c.art.Resolve(t.Source)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if errors.Is(err, artwork.ErrNoArtwork) {
			c.log.Debug("no artwork", "trackId", t.ID)
		} else {
			c.log.Warn("resolve artwork", "trackId", t.ID, "error", err)
		}
		return
	}
	// The record may have been removed, or replaced under the same ID.
	if live, _ := c.queue.Find(t.ID); live != t {
		c.log.Debug("dropping artwork for removed track", "trackId", t.ID)
		return
	}
	t.Artwork = img
	c.emitArtwork(ArtworkChange{TrackID: t.ID, Artwork: img})
}

func (c *Controller) emitState(e StateChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendState(e)
	}
}

func (c *Controller) emitTrackChange(prev, cur *playlist.Track, index int) {
	e := TrackChange{Index: index}
	if prev != nil {
		v := trackFrom(prev)
		e.Previous = &v
	}
	if cur != nil {
		v := trackFrom(cur)
		e.Current = &v
	}

	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendTrack(e)
	}
}

func (c *Controller) emitQueue() {
	e := QueueChange{
		Tracks: tracksFrom(c.queue.Tracks()),
		Index:  c.queue.CurrentIndex(),
	}

	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendQueue(e)
	}
}

func (c *Controller) emitMode() {
	e := ModeChange{RepeatMode: c.queue.RepeatMode(), Shuffle: c.queue.Shuffle()}

	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendMode(e)
	}
}

func (c *Controller) emitArtwork(e ArtworkChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendArtwork(e)
	}
}

func (c *Controller) emitError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

// readTitle returns the tag title of src, or "" when it has none.
func readTitle(src source.Source) string {
	rc, err := src.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	info, err := tags.Read(rc)
	if err != nil {
		return ""
	}
	return info.Display("")
}

func release(src source.Source) {
	if src != nil {
		src.Release()
	}
}

func releaseCandidates(cands []source.Candidate) {
	for _, cand := range cands {
		release(cand.Source)
	}
}
