package ontology

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
)

// ValueKind tags an instance property value.
type ValueKind int

// Value kinds.
const (
	KindText ValueKind = iota
	KindRef
	KindBlankRef
	KindNumber
	KindBool
)

// Value is a tagged instance property value. JSON strings are classified
// by ClassifyString when the value is converted to a graph term; numbers
// and booleans carry their native type into typed literals.
type Value struct {
	Kind ValueKind

	Str    string  // KindText, KindRef (token), KindBlankRef (local id)
	Number float64 // KindNumber
	Bool   bool    // KindBool
}

// Ref returns a reference value for a name or URI token.
func Ref(token string) Value { return Value{Kind: KindRef, Str: token} }

// Str returns a plain text value.
func Str(s string) Value { return Value{Kind: KindText, Str: s} }

// Num returns a numeric value.
func Num(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// UnmarshalJSON classifies a raw JSON value. Strings stay KindText here;
// the reference heuristics run at term-conversion time so classification
// sees the namespace table.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = Value{Kind: KindText, Str: t}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return errors.Wrapf(err, "invalid number %q", t.String())
		}
		*v = Value{Kind: KindNumber, Number: f}
	case bool:
		*v = Value{Kind: KindBool, Bool: t}
	default:
		return errors.Newf("unsupported property value %s", string(data))
	}
	return nil
}

// StringKind is the result of classifying a string property value.
type StringKind int

// String classifications.
const (
	StringPlain StringKind = iota
	StringURI
	StringBlank
	StringPrefixed
)

// ClassifyString applies the value-typing heuristics for string property
// values: absolute URIs become references, a leading blank-node marker
// ("_:id") selects an anonymous-node reference, a colon marks a tentative
// prefixed reference, and everything else is a plain string. The function
// is pure; whether a prefixed token actually resolves is decided against
// the namespace table by the caller.
func ClassifyString(s string) StringKind {
	switch {
	case isAbsoluteURI(s):
		return StringURI
	case strings.HasPrefix(s, "_:"):
		return StringBlank
	case strings.Contains(s, ":"):
		return StringPrefixed
	default:
		return StringPlain
	}
}

// term converts the value into a graph term. Prefixed strings whose prefix
// is unbound degrade to plain string literals.
func (v Value) term(o *Ontology) quad.Value {
	switch v.Kind {
	case KindRef:
		return o.Resolve(v.Str)
	case KindBlankRef:
		return quad.BNode(v.Str)
	case KindNumber:
		// Whole values become integer literals only when they fit in
		// int64; the conversion is undefined out of range. MaxInt64
		// itself is excluded because float64 rounds it up to 2^63.
		if v.Number == math.Trunc(v.Number) &&
			v.Number >= math.MinInt64 && v.Number < math.MaxInt64 {
			return quad.Int(int64(v.Number))
		}
		return quad.Float(v.Number)
	case KindBool:
		return quad.Bool(v.Bool)
	default:
		switch ClassifyString(v.Str) {
		case StringURI:
			return quad.IRI(v.Str)
		case StringBlank:
			return quad.BNode(strings.TrimPrefix(v.Str, "_:"))
		case StringPrefixed:
			if iri, ok := o.resolveStrict(v.Str); ok {
				return iri
			}
			return quad.String(v.Str)
		default:
			return quad.String(v.Str)
		}
	}
}
