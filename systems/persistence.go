package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const combatSaveKey = "combat"

// ItemStore is the part of gdata.Manager the save code needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the gdata storage for the app.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save storage: %w", err)
	}
	store = m
	return nil
}

// SetStore swaps the save backend. nil disables saving and loading.
func SetStore(s ItemStore) {
	store = s
}

// LoadCombatStats reads saved stats on top of current: fields missing from
// the save keep their current value. Without a save it returns current.
func LoadCombatStats(current combat.Stats) (combat.Stats, error) {
	if store == nil {
		return current, nil
	}
	data, err := store.LoadItem(combatSaveKey)
	if err != nil {
		return current, fmt.Errorf("load combat stats: %w", err)
	}
	if len(data) == 0 {
		return current, nil
	}

	stats := current
	if err := json.Unmarshal(data, &stats); err != nil {
		return current, fmt.Errorf("parse combat stats: %w", err)
	}
	return stats, nil
}

// SaveCombatStats writes the stats as JSON.
func SaveCombatStats(s combat.Stats) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode combat stats: %w", err)
	}
	if err := store.SaveItem(combatSaveKey, data); err != nil {
		return fmt.Errorf("save combat stats: %w", err)
	}
	return nil
}

// SaveCombatant persists the stats of an entity's combat engine, logging
// failures rather than interrupting play.
func SaveCombatant(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return
	}
	if err := SaveCombatStats(components.Combat.Get(e).Export()); err != nil {
		log.Printf("[persistence] Warning: %v", err)
	}
}

// RestoreCombatant loads saved stats into an entity's combat engine.
func RestoreCombatant(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combat) {
		return
	}
	c := components.Combat.Get(e)
	stats, err := LoadCombatStats(c.Export())
	if err != nil {
		log.Printf("[persistence] Warning: %v, keeping defaults", err)
		return
	}
	c.Import(stats)
}
