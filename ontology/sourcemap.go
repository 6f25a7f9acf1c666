package ontology

import (
	"path/filepath"
	"strings"
)

// SourceFileMap records which JSON file, if any, owns each entity
// identifier. Identifiers without an owning file stay in the graph but are
// excluded from write-back and reported at dump time.
type SourceFileMap struct {
	dir   string
	paths map[string]string
}

// NewSourceFileMap returns an empty map. Relative paths registered later
// are resolved against dir when it is non-empty.
func NewSourceFileMap(dir string) *SourceFileMap {
	return &SourceFileMap{dir: dir, paths: make(map[string]string)}
}

// Assign records that file owns id. An empty file is a no-op so callers can
// pass through optional per-record paths unconditionally.
func (m *SourceFileMap) Assign(id, file string) {
	if file == "" {
		return
	}
	if m.dir != "" && !anchoredIn(file, m.dir) {
		file = filepath.Join(m.dir, file)
	}
	m.paths[id] = file
}

// anchoredIn reports whether path is absolute or already lies under dir.
// A plain substring match would misread paths that merely contain the
// directory name ("profiles/x.json" against dir "files").
func anchoredIn(path, dir string) bool {
	if filepath.IsAbs(path) {
		return true
	}
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}

// Lookup returns the owning file for id.
func (m *SourceFileMap) Lookup(id string) (string, bool) {
	file, ok := m.paths[id]
	return file, ok
}

// Len returns the number of mapped identifiers.
func (m *SourceFileMap) Len() int {
	return len(m.paths)
}
