// Package templates embeds the default registry shipped with lspkit.
package templates

import (
	"embed"
	"fmt"
)

//go:embed tools.toml
var files embed.FS

// Read returns the embedded template with the given name.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded template %s: %w", name, err)
	}
	return data, nil
}
