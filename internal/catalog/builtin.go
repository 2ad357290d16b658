package catalog

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed sets/*.yaml
var builtinFS embed.FS

// BuiltinSource marks sets compiled into the binary.
const BuiltinSource = "builtin"

func init() {
	for _, s := range mustLoadBuiltins() {
		Register(s)
	}
}

// mustLoadBuiltins parses every embedded set. A broken embedded file is a
// programming error, so it panics.
func mustLoadBuiltins() []Set {
	entries, err := fs.ReadDir(builtinFS, "sets")
	if err != nil {
		panic(err)
	}

	result := make([]Set, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("sets", e.Name()))
		if err != nil {
			panic(err)
		}
		s, err := ParseYAML(data)
		if err != nil {
			panic(err)
		}
		s.Source = BuiltinSource
		result = append(result, s)
	}
	return result
}
