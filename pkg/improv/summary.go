package improv

import (
	"fmt"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

// Summary is the archival export of a finished session: one document per
// session, keyed by a timestamp-derived name.
type Summary struct {
	SessionID  string  `json:"session_id"`
	PlayerName string  `json:"player_name,omitempty"`
	Rounds     []Round `json:"rounds"`
	Completed  bool    `json:"completed"`
	Timestamp  string  `json:"timestamp"`
}

// Summary builds the session's export document.
func (g *Game) Summary() Summary {
	return Summary{
		SessionID:  g.sessionID,
		PlayerName: g.playerName,
		Rounds:     g.Rounds(),
		Completed:  g.IsGameComplete(),
		Timestamp:  g.now().Format("2006-01-02T15:04:05"),
	}
}

// SaveSummary writes the session summary to the store and moves the game
// to its terminal phase.
func (g *Game) SaveSummary(st store.Store) (string, error) {
	summary := g.Summary()
	name := fmt.Sprintf("improv_session_%s", g.now().Format("20060102_150405"))
	if err := st.SaveDocument(name, summary); err != nil {
		g.logger.Error("session summary not saved", "session", g.sessionID, "error", err)
		return name, err
	}
	g.Finish()
	g.logger.Info("session summary saved", "session", g.sessionID, "document", name)
	return name, nil
}
