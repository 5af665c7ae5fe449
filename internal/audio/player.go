// Package audio plays the game's one-shot sound cues.
package audio

import "sync"

// Player plays a sound cue by key. Unknown keys are ignored.
type Player interface {
	Play(key string)
}

// Receiver is implemented by games that accept an audio player from the frontend.
type Receiver interface {
	SetAudio(p Player)
}

// Silent discards every cue. Used over SSH, in tests and when no device is available.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) {}

// Recorder remembers the cues it was asked to play.
type Recorder struct {
	mu    sync.Mutex
	plays []string
}

// Play records the key.
func (r *Recorder) Play(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plays = append(r.plays, key)
}

// Plays returns a copy of the recorded keys in order.
func (r *Recorder) Plays() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.plays))
	copy(out, r.plays)
	return out
}

// Count returns how many times key was played.
func (r *Recorder) Count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.plays {
		if k == key {
			n++
		}
	}
	return n
}

// Reset forgets all recorded plays.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plays = r.plays[:0]
}
