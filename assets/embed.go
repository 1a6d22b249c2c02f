// assets/embed.go
//
// Embedded game data: the default dictionary, the easy/medium/hard puzzle
// lists, and the catalog schema migrations.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed dictionary.json easy.json medium.json hard.json
var Data embed.FS

//go:embed sql/*.sql
var migrations embed.FS

// Migrations returns the SQL migration files rooted at their directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		// sql/ is embedded above; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
