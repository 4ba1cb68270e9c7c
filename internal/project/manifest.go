package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// SourceExt is the file extension source modules are stored under,
// matching spec.md §6's `<ext>` placeholder.
const SourceExt = ".lang"

// ManifestFile is the package manifest's filename, read from a project's
// root directory (the parent of src/).
const ManifestFile = "lang.toml"

// Manifest is a package's `lang.toml` [package] section: spec.md §6's
// Session input `{name, kind, semver}`.
type Manifest struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind"`
	Semver string `toml:"semver"`
}

// IsBinary reports whether this manifest declares a `bin` package, the
// isBinary argument symbols.CheckMainProc needs.
func (m Manifest) IsBinary() bool { return m.Kind == "bin" }

type manifestDoc struct {
	Package Manifest `toml:"package"`
}

// LoadManifest decodes lang.toml at path and validates its required
// fields, mirroring the teacher's [package]/[run] presence checks.
func LoadManifest(path string) (Manifest, error) {
	var doc manifestDoc
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(doc.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: missing [package].name", path)
	}
	kind := strings.TrimSpace(doc.Package.Kind)
	if kind != "bin" && kind != "lib" {
		return Manifest{}, fmt.Errorf("%s: [package].kind must be \"bin\" or \"lib\", got %q", path, doc.Package.Kind)
	}
	doc.Package.Kind = kind
	if !meta.IsDefined("package", "semver") || strings.TrimSpace(doc.Package.Semver) == "" {
		return Manifest{}, fmt.Errorf("%s: missing [package].semver", path)
	}
	return doc.Package, nil
}
