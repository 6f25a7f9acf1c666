package ontology

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/exa-atow/ontogen/errors"
)

// StringList accepts a JSON string or array of strings.
type StringList []string

// UnmarshalJSON accepts "value" and ["value", ...] shapes.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.Wrap(err, "value must be a string or a list of strings")
	}
	*l = StringList(many)
	return nil
}

// ValueList accepts a single JSON value or an array of values.
type ValueList []Value

// UnmarshalJSON accepts both a scalar and a list of scalars.
func (l *ValueList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var many []Value
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*l = ValueList(many)
		return nil
	}
	var one Value
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = ValueList{one}
	return nil
}

// filePath resolves a definition file name against the files directory.
func (o *Ontology) filePath(name string) string {
	if o.filesDir == "" || anchoredIn(name, o.filesDir) {
		return name
	}
	return filepath.Join(o.filesDir, name)
}

func (o *Ontology) readDefinitions(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	return nil
}

type classRecord struct {
	ID           string        `json:"id"`
	PrefLabel    Text          `json:"pref_label"`
	Comment      Text          `json:"comment"`
	ParentClass  string        `json:"parent_class"`
	Equivalent   string        `json:"equivalent"`
	LinkHTML     string        `json:"link_html"`
	OneOf        []string      `json:"one_of"`
	Restrictions []Restriction `json:"restrictions"`
	Cardinality  *Cardinality  `json:"cardinality"`
}

// LoadClasses loads class definitions from a JSON file and adds them with
// defaultParent as the fallback parent class. The loaded file becomes the
// owning file for every class it defines.
func (o *Ontology) LoadClasses(name, defaultParent string) error {
	path := o.filePath(name)

	var records []classRecord
	if err := o.readDefinitions(path, &records); err != nil {
		return errors.Wrapf(err, "loading classes from %s", path)
	}
	o.log.Infow("loading classes", "file", path, "count", len(records))

	for _, rec := range records {
		parent := rec.ParentClass
		if parent == "" {
			parent = defaultParent
		}
		if err := o.AddClass(Class{
			Name:         rec.ID,
			Parent:       parent,
			Equivalent:   rec.Equivalent,
			PrefLabel:    rec.PrefLabel,
			Comment:      rec.Comment,
			LinkHTML:     rec.LinkHTML,
			OneOf:        rec.OneOf,
			Restrictions: rec.Restrictions,
			Cardinality:  rec.Cardinality,
			SourceFile:   path,
		}); err != nil {
			return errors.Wrapf(err, "adding class %q from %s", rec.ID, path)
		}
	}
	return nil
}

type propertyRecord struct {
	ID           string     `json:"id"`
	PropertyType string     `json:"property_type"`
	Domain       StringList `json:"domain"`
	Range        string     `json:"range"`
	PrefLabel    Text       `json:"pref_label"`
	Comment      Text       `json:"comment"`
}

// LoadProperties loads property definitions from a JSON file.
func (o *Ontology) LoadProperties(name string) error {
	path := o.filePath(name)

	var records []propertyRecord
	if err := o.readDefinitions(path, &records); err != nil {
		return errors.Wrapf(err, "loading properties from %s", path)
	}
	o.log.Infow("loading properties", "file", path, "count", len(records))

	for _, rec := range records {
		if err := o.AddProperty(Property{
			Name:       rec.ID,
			Kind:       PropertyKind(rec.PropertyType),
			Domain:     rec.Domain,
			Range:      rec.Range,
			PrefLabel:  rec.PrefLabel,
			Comment:    rec.Comment,
			SourceFile: path,
		}); err != nil {
			return errors.Wrapf(err, "adding property %q from %s", rec.ID, path)
		}
	}
	return nil
}

type instanceRecord struct {
	ID         string               `json:"id"`
	ClassType  StringList           `json:"class_type"`
	Properties map[string]ValueList `json:"properties"`
	PrefLabel  Text                 `json:"pref_label"`
	Comment    Text                 `json:"comment"`
	JSONPath   string               `json:"json_path"`
}

// LoadInstances loads individuals from a JSON file. A missing file is
// skipped with a warning; the instances file is optional.
func (o *Ontology) LoadInstances(name string) error {
	path := o.filePath(name)

	var records []instanceRecord
	if err := o.readDefinitions(path, &records); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			o.log.Warnw("instances file not found, skipping", "file", path)
			return nil
		}
		return errors.Wrapf(err, "loading instances from %s", path)
	}
	o.log.Infow("loading instances", "file", path, "count", len(records))

	for _, rec := range records {
		props := make(map[string][]Value, len(rec.Properties))
		for name, values := range rec.Properties {
			props[name] = values
		}
		if err := o.AddInstance(Instance{
			Name:       rec.ID,
			ClassTypes: rec.ClassType,
			Properties: props,
			PrefLabel:  rec.PrefLabel,
			Comment:    rec.Comment,
			SourceFile: rec.JSONPath,
		}); err != nil {
			return errors.Wrapf(err, "adding instance %q from %s", rec.ID, path)
		}
	}
	return nil
}

type restrictionRecord struct {
	ClassName    string `json:"class_name"`
	Restrictions []struct {
		PropertyName  string   `json:"property_name"`
		Enumeration   []string `json:"enumeration"`
		AllValuesFrom string   `json:"all_values_from"`
		Comment       Text     `json:"comment"`
	} `json:"restrictions"`
}

// LoadRestrictions loads per-class restriction definitions from a JSON
// file and applies them. A missing file is skipped with a warning; the
// restrictions file is optional.
func (o *Ontology) LoadRestrictions(name string) error {
	path := o.filePath(name)

	var records []restrictionRecord
	if err := o.readDefinitions(path, &records); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			o.log.Warnw("restrictions file not found, skipping", "file", path)
			return nil
		}
		return errors.Wrapf(err, "loading restrictions from %s", path)
	}
	o.log.Infow("loading restrictions", "file", path, "count", len(records))

	for _, rec := range records {
		for _, r := range rec.Restrictions {
			if err := o.AddRestrictionToClass(rec.ClassName, Restriction{
				Property:      r.PropertyName,
				Enumeration:   r.Enumeration,
				AllValuesFrom: r.AllValuesFrom,
				Comment:       r.Comment,
			}); err != nil {
				return errors.Wrapf(err, "restricting class %q from %s", rec.ClassName, path)
			}
		}
	}
	return nil
}
