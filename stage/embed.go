package stage

import "embed"

//go:embed arena.tmx
var arenaFS embed.FS

// Arena loads the embedded arena map.
func Arena() (*Stage, error) {
	return Load(arenaFS, "arena.tmx")
}
