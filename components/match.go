package components

import "github.com/yohamta/donburi"

// Winner values for MatchData.Winner.
const (
	WinnerNone = -1
	WinnerDraw = -2
)

// MatchData is the match singleton: the tick counter and the terminal
// result. Winner is a fighter index once GameOver is set, or WinnerDraw
// when both fighters lose their last stock on the same tick.
type MatchData struct {
	Tick     int
	GameOver bool
	Winner   int
}

// End records the terminal result. The first call wins; the winner never
// changes afterwards.
func (m *MatchData) End(winner int) {
	if m.GameOver {
		return
	}
	m.GameOver = true
	m.Winner = winner
}

var Match = donburi.NewComponentType[MatchData]()
