package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/spindle/internal/source"
)

// SpeakerRate is the output rate; sources at other rates are resampled.
const SpeakerRate = beep.SampleRate(44100)

const resampleQuality = 4

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SpeakerRate, SpeakerRate.N(time.Second/10))
	})
	return speakerErr
}

// Player plays MP3 sources through the system speaker.
type Player struct {
	mu       sync.Mutex
	state    State
	src      source.Source
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	queued   bool   // ctrl handed to the speaker
	gen      uint64 // bumped on every load/stop so stale callbacks are dropped

	onFinished func(source.Source)
	onState    func(State)
}

// New creates a stopped player. The speaker is opened on first Load.
func New() *Player {
	return &Player{state: Stopped}
}

func (p *Player) Load(src source.Source) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	rc, err := src.Open()
	if err != nil {
		return err
	}
	streamer, format, err := decodeMP3(rc)
	if err != nil {
		return err
	}
	if err := initSpeaker(); err != nil {
		streamer.Close()
		return err
	}

	var s beep.Streamer = streamer
	if format.SampleRate != SpeakerRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SpeakerRate, streamer)
	}
	p.src = src
	p.streamer = streamer
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	p.queued = false
	return nil
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil || p.state == Playing {
		return
	}
	if !p.queued {
		gen := p.gen
		p.ctrl.Paused = false
		speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
			// Runs on the speaker goroutine with the speaker locked.
			go p.ended(gen)
		})))
		p.queued = true
	} else {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
	p.state = Playing
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	p.gen++
	if p.queued {
		speaker.Clear()
		p.queued = false
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.src = nil
	p.ctrl = nil
	p.state = Stopped
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) OnFinished(fn func(source.Source)) {
	p.mu.Lock()
	p.onFinished = fn
	p.mu.Unlock()
}

func (p *Player) OnStateChange(fn func(State)) {
	p.mu.Lock()
	p.onState = fn
	p.mu.Unlock()
}

// ended handles the end of the stream queued under gen.
// A decode error reports a state change instead of a normal finish.
func (p *Player) ended(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	var streamErr error
	if p.streamer != nil {
		streamErr = p.streamer.Err()
	}
	src := p.src
	p.queued = false
	p.stopLocked()
	finished, changed := p.onFinished, p.onState
	p.mu.Unlock()

	if streamErr != nil {
		if changed != nil {
			changed(Stopped)
		}
		return
	}
	if finished != nil {
		finished(src)
	}
}
