// Package config loads the generation manifest: which document to
// fetch, which pages and components to generate, and where output goes.
// The YAML manifest is checked against an embedded CUE schema before
// any field is used.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// manifestSchema is the structural contract for the manifest file.
const manifestSchema = `
document!: string & !=""
pages?: [...string & !=""]
components?: [...string & !=""]
output_dir!: string & !=""
target?: {
	namespace?: string
	image_dir?: string
}
`

// Manifest selects what to generate and where to put it.
type Manifest struct {
	// Document is the design-document key to fetch.
	Document string `yaml:"document"`
	// Pages restricts generation to the named pages; empty means all.
	Pages []string `yaml:"pages"`
	// Components restricts generation to the named top-level frames;
	// empty means every top-level frame on the selected pages.
	Components []string `yaml:"components"`
	// OutputDir receives one generated source file per component.
	OutputDir string `yaml:"output_dir"`
	Target    Target `yaml:"target"`
}

// Target holds output-shaping options.
type Target struct {
	Namespace string `yaml:"namespace"`
	ImageDir  string `yaml:"image_dir"`
}

// ValidationError reports a schema violation with its manifest path.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Load reads, validates and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse validates manifest bytes against the schema and decodes them.
func Parse(data []byte) (*Manifest, error) {
	if errs := Validate(data); len(errs) > 0 {
		return nil, errs[0]
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}

// Validate checks manifest bytes against the embedded schema and
// returns every violation found.
func Validate(data []byte) []*ValidationError {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return []*ValidationError{{Message: fmt.Sprintf("not valid YAML: %v", err)}}
	}
	if raw == nil {
		return []*ValidationError{{Message: "manifest is empty"}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(manifestSchema)
	if err := schema.Err(); err != nil {
		// The schema is a compile-time constant; failing to build it is
		// a programming error.
		panic(fmt.Sprintf("manifest schema does not compile: %v", err))
	}

	unified := schema.Unify(ctx.Encode(raw))
	err := unified.Validate(cue.Concrete(true), cue.Final())
	if err == nil {
		return nil
	}

	var out []*ValidationError
	for _, e := range cueerrors.Errors(err) {
		path := cue.MakePath(cueSelectors(e.Path())...).String()
		out = append(out, &ValidationError{Path: path, Message: e.Error()})
	}
	return out
}

func cueSelectors(path []string) []cue.Selector {
	sels := make([]cue.Selector, len(path))
	for i, p := range path {
		sels[i] = cue.Str(p)
	}
	return sels
}
