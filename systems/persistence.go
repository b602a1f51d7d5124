package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/session"
	"github.com/automoto/troveyball/shared/roundstate"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for stats storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadStats loads lifetime stats from disk. A missing save is not an error
// and yields nil.
func LoadStats() (*components.StatsData, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.StatsKey)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stats components.StatsData
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved stats: %v", err)
		return nil, err
	}
	return &stats, nil
}

// SaveStats saves lifetime stats to disk
func SaveStats(s *components.StatsData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize stats: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Persistence.StatsKey, data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
		return err
	}
	return nil
}

// RecordRound folds one finished round into stats. Teardowns count as played
// but leave the streak alone.
func RecordRound(stats *components.StatsData, s session.RoundSummary) {
	stats.RoundsPlayed++
	stats.BallsThrown += s.BallsThrown

	switch {
	case s.Scored:
		stats.RoundsScored++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.BestStreak {
			stats.BestStreak = stats.CurrentStreak
		}
	case s.Reason == roundstate.EndDepleted:
		stats.CurrentStreak = 0
	}
}

// NewStatsObserver returns a round observer that keeps the stats singleton
// current and saves it after every round.
func NewStatsObserver(e *ecs.ECS) func(session.RoundSummary) {
	return func(s session.RoundSummary) {
		stats := GetOrCreateStats(e)
		RecordRound(stats, s)
		_ = SaveStats(stats)
	}
}

// GetOrCreateStats returns the singleton Stats component, seeding it from
// disk when it is first created.
func GetOrCreateStats(e *ecs.ECS) *components.StatsData {
	if entry, ok := components.Stats.First(e.World); ok {
		return components.Stats.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.Stats))
	if saved, _ := LoadStats(); saved != nil {
		components.Stats.SetValue(entry, *saved)
	}
	return components.Stats.Get(entry)
}
