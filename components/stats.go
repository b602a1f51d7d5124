package components

import "github.com/yohamta/donburi"

// StatsData accumulates over every session and is persisted between runs.
type StatsData struct {
	RoundsPlayed  int `json:"roundsPlayed"`
	RoundsScored  int `json:"roundsScored"`
	BallsThrown   int `json:"ballsThrown"`
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
}

var Stats = donburi.NewComponentType[StatsData]()
