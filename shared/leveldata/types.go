// Package leveldata parses arena layouts from Tiled TMX files.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// Arena holds everything the sandbox needs to lay out a fight.
type Arena struct {
	Walls       []Rect
	PlayerSpawn *Spawn
	EnemySpawns []Spawn
	Width       int
	Height      int
	TileWidth   int
	TileHeight  int
}

// Rect is a solid wall in pixels, top-left anchored.
type Rect struct {
	X, Y, W, H float64
}

// Spawn places one entity. Kind is "player" or an enemy type name.
type Spawn struct {
	X, Y float64
	Kind string
}

// KindPlayer marks the player spawn point.
const KindPlayer = "player"
