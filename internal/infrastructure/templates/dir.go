package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirSource loads prompt templates from a flat directory. References are
// reduced to their base name so a policy can never point outside the
// template directory.
type DirSource struct {
	dir string
}

// NewDirSource binds a source to the given directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load reads the template file named by ref.
func (s *DirSource) Load(ref string) (string, error) {
	name := filepath.Base(strings.TrimSpace(ref))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid template reference %q", ref)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return string(data), nil
}
