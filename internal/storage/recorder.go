package storage

import "github.com/vovakirdan/carrot-jump/internal/core"

// Recorder writes one score row per game over of a running game.
// Frontends feed it the state after every tick.
type Recorder struct {
	store     *Store
	gameID    string
	player    string
	sessionID string
	saved     bool
}

// NewRecorder creates a recorder for gameID. A nil store records nothing.
func NewRecorder(store *Store, gameID, player, sessionID string) *Recorder {
	return &Recorder{store: store, gameID: gameID, player: player, sessionID: sessionID}
}

// Observe saves the score the first time st reports a game over with a
// positive score. A state that is not game over arms the next save.
// ok reports whether a row was written.
func (r *Recorder) Observe(st core.GameState) (ok bool, err error) {
	if !st.GameOver {
		r.saved = false
		return false, nil
	}
	if r.saved {
		return false, nil
	}
	r.saved = true

	if r.store == nil || st.Score <= 0 {
		return false, nil
	}
	if _, err := r.store.SaveScore(r.gameID, st.Score, r.player, r.sessionID); err != nil {
		return false, err
	}
	return true, nil
}

// Reset arms the recorder for a fresh run.
func (r *Recorder) Reset() {
	r.saved = false
}
