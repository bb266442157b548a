package manager

import (
	"color-snake/game/types"
)

// ScoreManager keeps the round's score and the color of the last food
// eaten, which decides whether the next catch is worth double.
type ScoreManager struct {
	Points        int
	LastCollected types.Color
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{}
}

// Collect scores a catch of the given color and returns the points added.
func (sm *ScoreManager) Collect(color types.Color) int {
	delta := types.NormalCatch
	if color == sm.LastCollected {
		delta = types.RepeatedCatch
	}
	sm.Points += delta
	sm.LastCollected = color
	return delta
}

// AwardBonus adds BonusPoints once if colors hold the bonus pattern and
// returns the points added.
func (sm *ScoreManager) AwardBonus(colors []types.Color) int {
	if !HasBonusPattern(colors) {
		return 0
	}
	sm.Points += types.BonusPoints
	return types.BonusPoints
}

// HasBonusPattern looks for three equal colors at i, i+1, i+2 where i
// runs over even indices only. The first match ends the scan.
func HasBonusPattern(colors []types.Color) bool {
	for i := 0; i < len(colors)-2; i += 2 {
		if colors[i] == colors[i+1] && colors[i+1] == colors[i+2] {
			return true
		}
	}
	return false
}

// Reset zeroes the score and forgets the last collected color.
func (sm *ScoreManager) Reset() {
	sm.Points = 0
	sm.LastCollected = types.NoColor
}
