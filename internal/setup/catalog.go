// Package setup writes the tool registry, interactively or with defaults.
package setup

import "github.com/lspkit/lspkit/internal/registry"

// CatalogEntry is a known tool offered during setup.
type CatalogEntry struct {
	Tool        registry.Tool
	Description string
	// Default marks entries preselected in the setup form and written by
	// non-interactive runs.
	Default bool
}

// Catalog returns the known tools in display order.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Description: "Markdown language server",
			Default:     true,
			Tool: registry.Tool{
				Name:       "marksman",
				Repo:       "artempyanykh/marksman",
				ServerArgs: []string{"server"},
				Assets: map[string]map[string]string{
					"darwin":  {"any": "marksman-macos"},
					"linux":   {"amd64": "marksman-linux-x64", "arm64": "marksman-linux-arm64"},
					"windows": {"any": "marksman.exe"},
				},
			},
		},
		{
			Description: "TOML language server",
			Tool: registry.Tool{
				Name:       "taplo",
				Repo:       "tamasfe/taplo",
				ServerArgs: []string{"lsp", "stdio"},
				Assets: map[string]map[string]string{
					"darwin": {
						"amd64": "taplo-full-darwin-x86_64.gz",
						"arm64": "taplo-full-darwin-aarch64.gz",
					},
					"linux": {
						"amd64": "taplo-full-linux-x86_64.gz",
						"arm64": "taplo-full-linux-aarch64.gz",
					},
					"windows": {"amd64": "taplo-full-windows-x86_64.zip"},
				},
			},
		},
	}
}

func catalogByName() map[string]CatalogEntry {
	byName := make(map[string]CatalogEntry)
	for _, entry := range Catalog() {
		byName[entry.Tool.Name] = entry
	}
	return byName
}
