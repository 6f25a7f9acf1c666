// Package config loads the ontogen configuration.
//
// Configuration is read from ontology_config.yaml in the working directory
// when present, with ONTOGEN_* environment variables taking precedence.
// All options have working defaults so the tool runs with no config file at
// all, matching the behaviour the JSON definition files were authored
// against.
package config

// Config represents the ontogen configuration.
type Config struct {
	// DefaultLang is the language tag applied to labels and comments
	// given as bare strings instead of per-language mappings.
	DefaultLang string `mapstructure:"default_lang"`

	// BaseURI is the ontology's own namespace. A trailing "#" is appended
	// when missing so local names always land in the fragment.
	BaseURI string `mapstructure:"base_uri"`

	// FilesDir is the directory holding the JSON definition files.
	// Relative source-file assignments are resolved against it.
	FilesDir string `mapstructure:"files_dir"`

	// Namespaces holds extra prefix -> base-URI bindings applied on top
	// of the standard ones (rdf, rdfs, owl, skos, xsd).
	Namespaces map[string]string `mapstructure:"namespaces"`

	// Format is the default graph serialization format.
	Format string `mapstructure:"format"`
}

// Default configuration values.
const (
	DefaultLang    = "en"
	DefaultBaseURI = "https://localhost/myontology#"
	DefaultFiles   = "files"
	DefaultFormat  = "nquads"
)

// ConfigFileName is the well-known config file looked up in the working
// directory.
const ConfigFileName = "ontology_config.yaml"
