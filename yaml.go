package ragconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML settings document and runs it through Load.
// It operates on bytes the caller already holds; it performs no file or
// network I/O. Opaque handle fields (embedding model, documents) cannot
// be expressed in YAML and take their defaults.
func LoadYAML(data []byte) (*RAGConfig, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings document: %w", err)
	}
	return Load(raw)
}
