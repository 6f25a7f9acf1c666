package items

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/logger"
)

// Cache holds every item defined under a directory of JSON files, keyed
// by identifier. Iteration order for write-back is load order followed by
// addition order.
type Cache struct {
	log *zap.SugaredLogger

	dir     string
	paths   []string
	entries map[string]*Item
	order   []string
}

// Load reads every *.json file under dir, in sorted path order, and links
// parents once all entries are known. A parent_class naming an unknown
// identifier is an error.
func Load(dir string) (*Cache, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "globbing %s", dir)
	}
	sort.Strings(paths)

	c := &Cache{
		log:     logger.Logger.Named("items"),
		dir:     dir,
		paths:   paths,
		entries: make(map[string]*Item),
	}
	c.log.Infow("loading ontology items", "dir", dir, "files", len(paths))

	// The parent link needs the full entry set, so record the raw
	// identifiers first and resolve them after every file is read.
	parents := make(map[string]string)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		for _, rec := range records {
			if rec.ParentClass != "" {
				parents[rec.ID] = rec.ParentClass
			}
			if err := c.Add(&Item{
				ID:         rec.ID,
				Labels:     rec.PrefLabel,
				Comments:   rec.Comment,
				SourceFile: path,
			}, false); err != nil {
				return nil, errors.Wrapf(err, "loading %s", path)
			}
		}
	}

	for id, parentID := range parents {
		parent, ok := c.entries[parentID]
		if !ok {
			return nil, errors.Mark(
				errors.Newf("item %q names unknown parent %q", id, parentID),
				ErrUnknownItem)
		}
		c.entries[id].Parent = parent
	}

	c.log.Infow("initial entries loaded", "count", len(c.entries))
	return c, nil
}

// Paths returns the definition files backing the cache, in sorted order.
func (c *Cache) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	return len(c.entries)
}

// IDs returns every cached identifier in load-then-addition order.
func (c *Cache) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ResolvePath resolves a definition file name against the cache
// directory. Absolute names and names already under the directory pass
// through unchanged.
func (c *Cache) ResolvePath(name string) string {
	if c.dir == "" || filepath.IsAbs(name) ||
		name == c.dir || strings.HasPrefix(name, c.dir+string(filepath.Separator)) {
		return name
	}
	return filepath.Join(c.dir, name)
}

// Get returns the item with the given identifier.
func (c *Cache) Get(id string) (*Item, error) {
	item, ok := c.entries[id]
	if !ok {
		return nil, errors.Mark(errors.Newf("item %q does not exist", id), ErrUnknownItem)
	}
	return item, nil
}

// Add inserts an item. An identifier already present is an error unless
// force is set, in which case the entry is replaced in place and keeps
// its original position for write-back.
func (c *Cache) Add(item *Item, force bool) error {
	if _, exists := c.entries[item.ID]; exists {
		if !force {
			return errors.Mark(errors.Newf("item %q already exists", item.ID), ErrDuplicateItem)
		}
		c.entries[item.ID] = item
		return nil
	}
	c.entries[item.ID] = item
	c.order = append(c.order, item.ID)
	return nil
}

// DumpToJSON appends cached items missing from their source file to that
// file's record list. Records already on disk are left exactly as they
// are; only genuinely new identifiers are written, in addition order.
// Files gaining no records keep their bytes untouched.
func (c *Cache) DumpToJSON() error {
	for _, path := range c.paths {
		if err := c.appendNewRecords(path); err != nil {
			return errors.Wrapf(err, "dumping items to %s", path)
		}
	}
	return nil
}

func (c *Cache) appendNewRecords(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var existing []json.RawMessage
	if err := json.Unmarshal(data, &existing); err != nil {
		return errors.Wrap(err, "existing file is not a JSON record array")
	}

	onDisk := make(map[string]bool, len(existing))
	for _, msg := range existing {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return errors.Wrap(err, "existing record is not an object")
		}
		onDisk[head.ID] = true
	}

	appended := 0
	for _, id := range c.order {
		item := c.entries[id]
		if item.SourceFile != path || onDisk[id] {
			continue
		}
		encoded, err := encodeRecord(item.record())
		if err != nil {
			return err
		}
		existing = append(existing, encoded)
		appended++
	}
	if appended == 0 {
		// Nothing to add; leave the file's bytes untouched.
		return nil
	}
	c.log.Infow("appending new items", "file", path, "count", appended)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(existing); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func encodeRecord(rec record) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
