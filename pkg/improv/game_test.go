package improv

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

func fixedRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func TestStartNewRoundProgression(t *testing.T) {
	g := NewGame(WithRand(fixedRand()))
	assert.Equal(t, PhaseIntro, g.Phase())
	assert.False(t, g.IsGameComplete())

	for i := 1; i <= DefaultMaxRounds; i++ {
		scenario, err := g.StartNewRound()
		require.NoError(t, err, "round %d", i)
		assert.NotEmpty(t, scenario)
		assert.Equal(t, i, g.CurrentRound())
		assert.Equal(t, PhaseAwaitingImprov, g.Phase())
		assert.Equal(t, 0, g.TurnCount())

		rounds := g.Rounds()
		require.Len(t, rounds, i)
		assert.Equal(t, i, rounds[i-1].RoundNumber)
		assert.Equal(t, scenario, rounds[i-1].Scenario)
		assert.Empty(t, rounds[i-1].PlayerPerformance)
	}

	assert.True(t, g.IsGameComplete())

	_, err := g.StartNewRound()
	require.Error(t, err)
	var ae *agent.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, agent.ErrGameComplete, ae.Type)
	assert.Equal(t, DefaultMaxRounds, g.CurrentRound())
}

func TestNextScenarioNoRepeatWithinCycle(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	g := NewGame(WithScenarios(pool), WithRand(fixedRand()))

	seen := make(map[string]bool)
	for i := 0; i < len(pool); i++ {
		s := g.NextScenario()
		assert.False(t, seen[s], "scenario %q repeated within cycle", s)
		seen[s] = true
	}
	assert.Len(t, seen, len(pool))

	// Pool exhausted: the exclusion set resets and draws continue.
	s := g.NextScenario()
	assert.Contains(t, pool, s)
	assert.Equal(t, s, g.CurrentScenario())
}

func TestNextScenarioEmptyPool(t *testing.T) {
	g := NewGame(WithScenarios(nil), WithRand(fixedRand()))
	assert.Equal(t, "", g.NextScenario())
}

func TestAddPlayerLine(t *testing.T) {
	g := NewGame(WithRand(fixedRand()))

	// No round yet: silently ignored.
	g.AddPlayerLine("hello?")
	assert.Empty(t, g.Rounds())
	assert.Equal(t, 0, g.TurnCount())

	_, err := g.StartNewRound()
	require.NoError(t, err)

	g.AddPlayerLine("first line")
	g.AddPlayerLine("second line")
	assert.Equal(t, 2, g.TurnCount())

	round := g.Rounds()[0]
	assert.Equal(t, []string{"first line", "second line"}, round.PlayerPerformance)
}

func TestEndCurrentRound(t *testing.T) {
	g := NewGame(WithRand(fixedRand()))

	// No round yet: silently ignored.
	g.EndCurrentRound("great!")
	assert.Equal(t, PhaseIntro, g.Phase())

	_, err := g.StartNewRound()
	require.NoError(t, err)
	g.AddPlayerLine("a line")
	g.EndCurrentRound("what a scene!")

	assert.Equal(t, PhaseReacting, g.Phase())
	assert.Equal(t, "what a scene!", g.Rounds()[0].HostReaction)
}

func TestShouldEndScene(t *testing.T) {
	g := NewGame(WithRand(fixedRand()))
	_, err := g.StartNewRound()
	require.NoError(t, err)

	// Below the minimum threshold of 3 the answer is always no.
	for i := 0; i < 2; i++ {
		assert.False(t, g.ShouldEndScene(), "turn count %d", g.TurnCount())
		g.AddPlayerLine("line")
	}

	// At or past the maximum threshold of 5 the answer is always yes.
	for g.TurnCount() < 5 {
		g.AddPlayerLine("line")
	}
	for i := 0; i < 10; i++ {
		assert.True(t, g.ShouldEndScene())
	}
}

func TestShouldEndSceneExplicit(t *testing.T) {
	g := NewGame(WithRand(fixedRand()))
	_, err := g.StartNewRound()
	require.NoError(t, err)

	g.MarkSceneEnded()
	assert.True(t, g.ShouldEndScene())

	// A new round clears the flag; with one line the scene never ends.
	_, err = g.StartNewRound()
	require.NoError(t, err)
	g.AddPlayerLine("one")
	assert.False(t, g.ShouldEndScene())
}

func TestRoundsReturnsCopy(t *testing.T) {
	g := NewGame(WithRand(fixedRand()))
	_, err := g.StartNewRound()
	require.NoError(t, err)
	g.AddPlayerLine("original line")
	g.EndCurrentRound("nice")

	rounds := g.Rounds()
	rounds[0].HostReaction = "tampered"
	rounds[0].PlayerPerformance[0] = "tampered"
	rounds[0].PlayerPerformance = append(rounds[0].PlayerPerformance, "extra")

	fresh := g.Rounds()[0]
	assert.Equal(t, "nice", fresh.HostReaction)
	assert.Equal(t, []string{"original line"}, fresh.PlayerPerformance)
}

func TestSaveSummary(t *testing.T) {
	st := store.NewMemStore()
	g := NewGame(
		WithRand(fixedRand()),
		WithClock(func() time.Time {
			return time.Date(2025, 1, 15, 18, 45, 30, 0, time.UTC)
		}),
	)
	g.SetPlayerName("Ravi")

	for i := 0; i < DefaultMaxRounds; i++ {
		_, err := g.StartNewRound()
		require.NoError(t, err)
		g.AddPlayerLine("a line")
		g.EndCurrentRound("nice")
	}

	name, err := g.SaveSummary(st)
	require.NoError(t, err)
	assert.Equal(t, "improv_session_20250115_184530", name)
	assert.Equal(t, PhaseDone, g.Phase())

	raw, ok := st.Raw(name)
	require.True(t, ok)

	var summary Summary
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.Equal(t, "Ravi", summary.PlayerName)
	assert.Equal(t, g.SessionID(), summary.SessionID)
	assert.True(t, summary.Completed)
	assert.Len(t, summary.Rounds, DefaultMaxRounds)
	assert.Equal(t, "2025-01-15T18:45:30", summary.Timestamp)
}

// failingDocStore simulates a store whose document writes fail.
type failingDocStore struct {
	*store.MemStore
}

func (s *failingDocStore) SaveDocument(name string, in any) error {
	return errors.New("disk full")
}

func TestSaveSummaryWriteFailure(t *testing.T) {
	st := &failingDocStore{MemStore: store.NewMemStore()}
	g := NewGame(WithRand(fixedRand()))

	_, err := g.StartNewRound()
	require.NoError(t, err)
	g.EndCurrentRound("nice")

	name, err := g.SaveSummary(st)
	require.Error(t, err)
	assert.NotEmpty(t, name)

	// The game stays out of the terminal phase so the summary can be
	// retried before the session closes.
	assert.Equal(t, PhaseReacting, g.Phase())
}
