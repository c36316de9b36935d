package core

// Cue is a discrete audio trigger raised by the simulation.
type Cue int

const (
	CueFlap  Cue = iota // impulse applied
	CuePoint            // pipe passed
	CueHit              // fatal collision
	CueDie              // entered game over
	cueCount
)

// Cues lists every cue in declaration order.
func Cues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := CueFlap; c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// String returns the cue name, which is also the base name of its sound asset.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CuePoint:
		return "point"
	case CueHit:
		return "hit"
	case CueDie:
		return "die"
	default:
		return "unknown"
	}
}

// CuePlayer receives cues. Playback is fire-and-forget and cues may overlap.
type CuePlayer interface {
	Play(c Cue)
}

// NopCuePlayer discards every cue.
type NopCuePlayer struct{}

// Play implements CuePlayer.
func (NopCuePlayer) Play(Cue) {}

// CueRecorder collects cues in order. Used by tests and the headless runner.
type CueRecorder struct {
	Played []Cue
}

// Play implements CuePlayer.
func (r *CueRecorder) Play(c Cue) {
	r.Played = append(r.Played, c)
}

// Count returns how many times the cue was played.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}
