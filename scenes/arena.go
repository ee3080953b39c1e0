package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/riposte/combat"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/leveldata"
	"github.com/automoto/riposte/systems"
	"github.com/automoto/riposte/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the combat sandbox: one player, the arena's enemies and the
// debug keys to spawn more.
type ArenaScene struct {
	ecs    *ecs.ECS
	layout *leveldata.Arena
	once   sync.Once
}

func NewArenaScene(layout *leveldata.Arena) *ArenaScene {
	return &ArenaScene{layout: layout}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then combat in the order hits are produced and consumed.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSandbox)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateLockouts)
	ecs.AddSystem(systems.UpdateCombatants)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateDamage)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateObjects)

	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHurtboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawFloatingText)
	ecs.AddRenderer(cfg.HUD, systems.DrawBossBar)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateInput(ecs)
	player := factory.CreateArena(ecs, as.layout, combat.NewStats(cfg.Player.Attack, cfg.Definitions().Block))
	systems.RestoreCombatant(player)
}
