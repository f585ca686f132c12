package improv

import (
	"context"
	"fmt"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

type setPlayerNameInput struct {
	Name string `json:"name" desc:"The player's name"`
}

type addPlayerLineInput struct {
	Text string `json:"text" desc:"What the player just said in character"`
}

type endRoundInput struct {
	Reaction string `json:"reaction" desc:"The host's reaction to the scene"`
}

type noInput struct{}

// Tools returns the improv host's tool set over one game session.
func Tools(g *Game, st store.Store) *agent.ToolSet {
	ts := agent.NewToolSet()

	agent.AddFunc(ts, "set_player_name",
		"Remember the player's name once they introduce themselves.",
		func(ctx context.Context, in setPlayerNameInput) (string, error) {
			g.SetPlayerName(in.Name)
			return fmt.Sprintf("Player name set to %s.", in.Name), nil
		})

	agent.AddFunc(ts, "get_next_scenario",
		"Draw a fresh improv scenario that hasn't been used this session.",
		func(ctx context.Context, _ noInput) (string, error) {
			scenario := g.NextScenario()
			if scenario == "" {
				return "The scenario pool is empty.", nil
			}
			return scenario, nil
		})

	agent.AddFunc(ts, "start_new_round",
		"Begin the next round with a fresh scenario. Check is_game_complete first.",
		func(ctx context.Context, _ noInput) (string, error) {
			scenario, err := g.StartNewRound()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Round %d of %d. Scenario: %s", g.CurrentRound(), g.maxRounds, scenario), nil
		})

	agent.AddFunc(ts, "add_player_line",
		"Log one line of the player's performance. Call after each player utterance during a scene.",
		func(ctx context.Context, in addPlayerLineInput) (string, error) {
			g.AddPlayerLine(in.Text)
			return fmt.Sprintf("Logged. The scene has %d line(s) so far.", g.TurnCount()), nil
		})

	agent.AddFunc(ts, "should_end_scene",
		"Check whether the current scene has gone on long enough to wrap up.",
		func(ctx context.Context, _ noInput) (string, error) {
			if g.ShouldEndScene() {
				return "Yes, wrap up the scene now.", nil
			}
			return "Not yet, let the scene keep going.", nil
		})

	agent.AddFunc(ts, "end_current_round",
		"End the scene with your reaction to the player's performance.",
		func(ctx context.Context, in endRoundInput) (string, error) {
			g.EndCurrentRound(in.Reaction)
			if g.IsGameComplete() {
				return "Round ended. That was the final round, wrap up the game.", nil
			}
			return "Round ended. Ready for the next one.", nil
		})

	agent.AddFunc(ts, "is_game_complete",
		"Check whether all rounds have been played.",
		func(ctx context.Context, _ noInput) (string, error) {
			if g.IsGameComplete() {
				return "Yes, the game is complete.", nil
			}
			return fmt.Sprintf("No, %d of %d rounds played.", g.CurrentRound(), g.maxRounds), nil
		})

	agent.AddFunc(ts, "save_session_summary",
		"Archive the finished session to disk. Call once at game end.",
		func(ctx context.Context, _ noInput) (string, error) {
			name, err := g.SaveSummary(st)
			if err != nil {
				return "I couldn't save the session, but what a game!", nil
			}
			return fmt.Sprintf("Session archived as %s.", name), nil
		})

	return ts
}

// HostAgent builds the improv game host definition.
func HostAgent(g *Game, st store.Store) *agent.Agent {
	return &agent.Agent{
		Name: "improv-host",
		Instructions: `You are an energetic improv game show host.

GAME FLOW:
1. Greet the player warmly and ask their name, then use set_player_name
2. Explain the rules: three rounds, you give a scenario, they act it out
3. Use start_new_round to begin each round and read the scenario with flair
4. During a scene, use add_player_line after each player utterance and
   should_end_scene to decide when to cut
5. When the scene ends, react with enthusiasm and use end_current_round
6. After the final round, use save_session_summary and give a big send-off

IMPORTANT:
- Keep the energy high but never talk over the player mid-scene
- Use tools immediately when needed
- No bullet points or formatting in speech`,
		Tools: Tools(g, st),
	}
}
