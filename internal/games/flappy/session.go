package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Options carries everything a game needs that is built once at startup.
type Options struct {
	Config config.FlappyConfig
	Keeper *storage.Keeper // nil keeps the high score in memory only
	Logger *log.Logger     // nil discards logs
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Session is one round: from the first flap to the crash.
// It moves Idle -> Active -> Over and never back; a restart builds a new Session.
type Session struct {
	cfg    config.FlappyConfig
	keeper *storage.Keeper
	logger *log.Logger

	clock     *core.Clock
	spawner   *Spawner
	lastSpawn uint64 // clock tick of the last spawn, or of activation

	player Player
	pipes  []Pipe
	score  int
	high   int
	phase  core.Phase

	dieFired bool
}

// NewSession creates an idle session. high is the best score known so far.
func NewSession(opts Options, high int, seed int64) *Session {
	return &Session{
		cfg:     opts.Config,
		keeper:  opts.Keeper,
		logger:  opts.logger(),
		clock:   core.NewClock(opts.Config.Loop.TickRate),
		spawner: NewSpawner(opts.Config, seed),
		player:  NewPlayer(opts.Config),
		pipes:   make([]Pipe, 0, 8),
		high:    high,
		phase:   core.PhaseIdle,
	}
}

// Step runs one tick. impulse reports whether a flap was requested since the
// previous tick. The returned cues are in the order they happened.
func (s *Session) Step(impulse bool) []core.Cue {
	var cues []core.Cue

	switch s.phase {
	case core.PhaseOver:
		return nil
	case core.PhaseIdle:
		if !impulse {
			return nil
		}
		s.activate()
	}

	if impulse {
		s.player.ApplyImpulse()
		cues = append(cues, core.CueFlap)
	}

	s.clock.Advance()
	s.player.Tick()

	if pipe, ok := s.spawner.MaybeSpawn(s.clock.Elapsed(s.lastSpawn)); ok {
		s.pipes = append(s.pipes, pipe)
		s.lastSpawn = s.clock.Ticks()
	}

	for i := range s.pipes {
		s.pipes[i].Tick(s.cfg.Physics.ScrollSpeed)
	}

	out := resolveTick(s.player, s.pipes, s.cfg)
	for i := 0; i < out.Points; i++ {
		s.addPoint()
		cues = append(cues, core.CuePoint)
	}

	s.pipes = evict(s.pipes, s.cfg.Pipes.Width)

	if out.Fatal() {
		cues = append(cues, s.end(out)...)
	}
	return cues
}

func (s *Session) activate() {
	s.phase = core.PhaseActive
	s.lastSpawn = s.clock.Ticks()
	s.logger.Debug("session active", "high", s.high)
}

// addPoint increments the score and writes a new record through to the store.
func (s *Session) addPoint() {
	s.score++
	if s.score > s.high {
		s.high = s.score
		s.keeper.Save(s.high)
	}
}

// end freezes the session. Hit and die are each raised once per session.
func (s *Session) end(out tickOutcome) []core.Cue {
	s.phase = core.PhaseOver
	cues := []core.Cue{core.CueHit}
	if !s.dieFired {
		s.dieFired = true
		cues = append(cues, core.CueDie)
	}

	cause := "floor"
	if out.PipeHit {
		cause = "pipe"
	}
	s.logger.Debug("session over", "cause", cause, "score", s.score, "high", s.high, "ticks", s.clock.Ticks())
	return cues
}

// Phase returns the lifecycle state.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// Score returns the points earned this session.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int {
	return s.high
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Pipes returns the live pipes in creation order. The slice must not be modified.
func (s *Session) Pipes() []Pipe {
	return s.pipes
}

// Ticks returns the number of simulated ticks since activation.
func (s *Session) Ticks() uint64 {
	return s.clock.Ticks()
}
