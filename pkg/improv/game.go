// Package improv tracks round and phase progression for the improv game
// host. One Game is one player's session; nothing here is shared across
// sessions, so there is no locking.
package improv

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
)

// Phase is the game's current step in its round lifecycle.
type Phase string

const (
	PhaseIntro          Phase = "intro"
	PhaseAwaitingImprov Phase = "awaiting_improv"
	PhaseReacting       Phase = "reacting"
	PhaseDone           Phase = "done"
)

// DefaultMaxRounds is how many rounds a full game runs.
const DefaultMaxRounds = 3

// Round is one played scene: its scenario, everything the player said,
// and the host's reaction once the scene ends.
type Round struct {
	RoundNumber       int      `json:"round_number"`
	Scenario          string   `json:"scenario"`
	PlayerPerformance []string `json:"player_performance"`
	HostReaction      string   `json:"host_reaction,omitempty"`
}

// Game is the improv session state. It is mutated only by the tool
// handlers, one call at a time.
type Game struct {
	sessionID        string
	playerName       string
	currentRound     int
	maxRounds        int
	rounds           []Round
	phase            Phase
	usedScenarios    map[string]bool
	currentScenario  string
	turnCountInScene int
	sceneEnded       bool

	pool   []string
	rng    *rand.Rand
	logger *slog.Logger
	now    func() time.Time
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithScenarios replaces the scenario pool.
func WithScenarios(pool []string) GameOption {
	return func(g *Game) { g.pool = pool }
}

// WithRand injects the random source, for deterministic play in tests.
func WithRand(r *rand.Rand) GameOption {
	return func(g *Game) { g.rng = r }
}

// WithMaxRounds overrides the round cap.
func WithMaxRounds(n int) GameOption {
	return func(g *Game) { g.maxRounds = n }
}

// WithLogger sets the game's logger.
func WithLogger(l *slog.Logger) GameOption {
	return func(g *Game) { g.logger = l }
}

// WithClock overrides the summary timestamp source.
func WithClock(now func() time.Time) GameOption {
	return func(g *Game) { g.now = now }
}

// NewGame creates a fresh session in the intro phase.
func NewGame(opts ...GameOption) *Game {
	g := &Game{
		sessionID:     uuid.NewString(),
		maxRounds:     DefaultMaxRounds,
		phase:         PhaseIntro,
		usedScenarios: make(map[string]bool),
		pool:          DefaultScenarios(),
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:        slog.Default(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SessionID returns the session's unique id.
func (g *Game) SessionID() string { return g.sessionID }

// PlayerName returns the player's name, if one was set.
func (g *Game) PlayerName() string { return g.playerName }

// SetPlayerName records the player's name.
func (g *Game) SetPlayerName(name string) { g.playerName = name }

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// CurrentRound returns how many rounds have started.
func (g *Game) CurrentRound() int { return g.currentRound }

// CurrentScenario returns the scenario in play.
func (g *Game) CurrentScenario() string { return g.currentScenario }

// Rounds returns the played rounds in order. The result is a copy;
// mutating it does not touch the session's own records.
func (g *Game) Rounds() []Round {
	rounds := make([]Round, len(g.rounds))
	for i, r := range g.rounds {
		r.PlayerPerformance = slices.Clone(r.PlayerPerformance)
		rounds[i] = r
	}
	return rounds
}

// TurnCount returns how many player lines the current scene has.
func (g *Game) TurnCount() int { return g.turnCountInScene }

// NextScenario draws a scenario the session hasn't used yet. When the pool
// is exhausted the exclusion set resets, so scenarios can repeat across
// cycles but never within one. The draw is recorded as used and current.
func (g *Game) NextScenario() string {
	if len(g.pool) == 0 {
		return ""
	}

	eligible := make([]string, 0, len(g.pool))
	for _, s := range g.pool {
		if !g.usedScenarios[s] {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) == 0 {
		g.usedScenarios = make(map[string]bool)
		eligible = append(eligible, g.pool...)
	}

	scenario := eligible[g.rng.IntN(len(eligible))]
	g.usedScenarios[scenario] = true
	g.currentScenario = scenario
	return scenario
}

// StartNewRound begins the next round: draws a scenario, resets the scene
// counters, and appends the round record. Fails with game_complete once
// the round cap is reached; callers should check IsGameComplete first.
func (g *Game) StartNewRound() (string, error) {
	if g.IsGameComplete() {
		return "", agent.NewGameCompleteError()
	}

	g.currentRound++
	g.phase = PhaseAwaitingImprov
	g.turnCountInScene = 0
	g.sceneEnded = false
	scenario := g.NextScenario()

	g.rounds = append(g.rounds, Round{
		RoundNumber:       g.currentRound,
		Scenario:          scenario,
		PlayerPerformance: []string{},
	})

	g.logger.Info("round started", "session", g.sessionID, "round", g.currentRound, "scenario", scenario)
	return scenario, nil
}

// AddPlayerLine appends one detected utterance to the current round's
// performance log. No-op before the first round starts.
func (g *Game) AddPlayerLine(text string) {
	if len(g.rounds) == 0 {
		return
	}
	round := &g.rounds[len(g.rounds)-1]
	round.PlayerPerformance = append(round.PlayerPerformance, text)
	g.turnCountInScene++
}

// EndCurrentRound records the host's reaction and moves to the reacting
// phase. No-op before the first round starts.
func (g *Game) EndCurrentRound(reaction string) {
	if len(g.rounds) == 0 {
		return
	}
	g.rounds[len(g.rounds)-1].HostReaction = reaction
	g.phase = PhaseReacting
}

// MarkSceneEnded forces ShouldEndScene to report true for this scene.
func (g *Game) MarkSceneEnded() {
	g.sceneEnded = true
}

// Finish moves the game to its terminal phase.
func (g *Game) Finish() {
	g.phase = PhaseDone
}

// IsGameComplete reports whether every round has been played.
func (g *Game) IsGameComplete() bool {
	return g.currentRound >= g.maxRounds
}

// ShouldEndScene reports whether the current scene has run long enough.
// The turn threshold is redrawn from {3,4,5} on every call, so repeated
// calls at the same turn count can disagree. Carried over as-is from the
// original; see DESIGN.md.
func (g *Game) ShouldEndScene() bool {
	if g.sceneEnded {
		return true
	}
	threshold := 3 + g.rng.IntN(3)
	return g.turnCountInScene >= threshold
}
