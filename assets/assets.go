// Package assets embeds the arena layouts.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/riposte/shared/leveldata"
)

// LevelsDir is the directory of the TMX arenas inside Levels.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	Levels embed.FS
)

// DefaultArena is loaded when no arena is picked on the command line.
const DefaultArena = "arena"

// LoadArena loads an embedded arena by stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(Levels, LevelsDir+"/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("arena %q (have %v): %w", name, ArenaNames(), err)
	}
	return arena, nil
}

// ArenaNames lists the embedded arenas.
func ArenaNames() []string {
	matches, _ := fs.Glob(Levels, LevelsDir+"/*.tmx")
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[len(LevelsDir)+1:len(m)-len(".tmx")])
	}
	sort.Strings(names)
	return names
}
