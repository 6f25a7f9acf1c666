package ontology

import (
	"io"
	"os"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld" // register the json-ld format
	_ "github.com/cayleygraph/quad/nquads" // register the n-quads format

	"github.com/exa-atow/ontogen/errors"
)

// Serialize writes the graph to w in the named exchange format. Formats
// come from the quad format registry; "nquads" and "jsonld" are always
// available.
func (o *Ontology) Serialize(w io.Writer, format string) error {
	f := quad.FormatByName(strings.ToLower(format))
	if f == nil || f.Writer == nil {
		return invalidConfiguration(errors.Newf("unknown serialization format %q", format))
	}

	qw := f.Writer(w)
	for _, q := range o.graph.All() {
		if err := qw.WriteQuad(q); err != nil {
			qw.Close()
			return errors.Wrapf(err, "serializing graph as %s", format)
		}
	}
	return qw.Close()
}

// SerializeToFile writes the graph to the given path.
func (o *Ontology) SerializeToFile(path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := o.Serialize(file, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
