// Package items is a lightweight view over the ontology definition files
// for scripted modification runs. It loads every JSON record in a
// directory into a flat id-keyed cache, lets callers add entries, and
// appends the additions back to their source files without touching
// records already on disk.
package items

import (
	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/ontology"
)

// Cache errors.
var (
	ErrDuplicateItem = errors.New("item already exists")
	ErrUnknownItem   = errors.New("unknown item")
)

// Item is a single ontology entry as it appears in a definition file.
type Item struct {
	// ID is the unique identifier.
	ID string

	// Labels and Comments are language-tagged annotation maps.
	Labels   ontology.Text
	Comments ontology.Text

	// SourceFile is the JSON file the item is defined in. New items must
	// name one of the cache's known files to be written back.
	SourceFile string

	// Parent is the resolved parent entry, linked after the initial load.
	Parent *Item
}

// Label returns the label for lang, falling back to the identifier for
// English so an item is always displayable.
func (it *Item) Label(lang string) string {
	if label, ok := it.Labels[lang]; ok {
		return label
	}
	if lang == "en" {
		return it.ID
	}
	return ""
}

// Comment returns the comment for lang, or empty.
func (it *Item) Comment(lang string) string {
	return it.Comments[lang]
}

// record is the on-disk shape of an item. Labels and comments always
// carry both languages so hand-edited files keep a uniform layout.
type record struct {
	ID          string        `json:"id"`
	PrefLabel   ontology.Text `json:"pref_label"`
	Comment     ontology.Text `json:"comment"`
	ParentClass string        `json:"parent_class,omitempty"`
}

func (it *Item) record() record {
	rec := record{
		ID: it.ID,
		PrefLabel: ontology.Text{
			"en": it.Label("en"),
			"fr": it.Label("fr"),
		},
		Comment: ontology.Text{
			"en": it.Comment("en"),
			"fr": it.Comment("fr"),
		},
	}
	if it.Parent != nil {
		rec.ParentClass = it.Parent.ID
	}
	return rec
}
