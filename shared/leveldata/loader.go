package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	wallsGroup  = "Walls"
	spawnsGroup = "Spawns"
)

// ErrNoPlayerSpawn is returned for arenas without a player spawn point.
var ErrNoPlayerSpawn = errors.New("arena has no player spawn")

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case wallsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case spawnsGroup:
			for _, o := range og.Objects {
				kind := strings.TrimSpace(o.Properties.GetString("kind"))
				if kind == "" {
					kind = o.Class
				}
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if kind == "" {
					return nil, fmt.Errorf("%s: spawn %d has no kind", tmxPath, o.ID)
				}
				s := Spawn{X: o.X, Y: o.Y, Kind: kind}
				if kind == KindPlayer {
					if arena.PlayerSpawn == nil {
						arena.PlayerSpawn = &s
					}
					continue
				}
				arena.EnemySpawns = append(arena.EnemySpawns, s)
			}
		}
	}

	if arena.PlayerSpawn == nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Left to right, so spawn order does not depend on the editor.
	sort.SliceStable(arena.EnemySpawns, func(i, j int) bool {
		return arena.EnemySpawns[i].X < arena.EnemySpawns[j].X
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		arenas[stem] = arena
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}
