package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/colorcombine"
)

const sampleRate = beep.SampleRate(44100)

// Player plays a chime for every merge in a scene.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given volume in [0, 1]. Call Init
// before sounds are heard.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Attach registers the player on the scene's merge events.
func (p *Player) Attach(s *colorcombine.Scene) colorcombine.CallbackHandle {
	return s.OnMerge(p.OnMerge)
}

// OnMerge queues the chime for the merged color. No-op before Init.
func (p *Player) OnMerge(ctx colorcombine.MergeContext) {
	p.play(Chime(ctx.Combined, p.volume, sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	// The speaker goroutine reads the mixer; hold its lock while adding.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending sounds and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
