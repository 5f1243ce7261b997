package setup

import (
	"fmt"
	"sort"
	"strings"

	// toml is used for syntax validation of the rendered registry only;
	// rendering itself is line-based so comments and ordering stay stable.
	toml "github.com/pelletier/go-toml"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/registry"
)

const registryHeader = `# lspkit tool registry.
#
# Each [tools.<name>] entry describes one language server: the GitHub
# repository that publishes its releases, the arguments that start it in
# server mode, and the release asset name for each platform. Platform keys
# follow Go's GOOS/GOARCH naming; "any" matches every architecture.
`

// Render produces registry content for the selected catalog tools in catalog
// order. cacheDir is recorded as cache_dir when non-empty.
func Render(selected []string, cacheDir string) (string, error) {
	byName := catalogByName()
	wanted := make(map[string]bool, len(selected))
	for _, name := range selected {
		if _, ok := byName[name]; !ok {
			return "", fmt.Errorf(messages.SetupUnknownCatalogToolFmt, name)
		}
		wanted[name] = true
	}

	var b strings.Builder
	b.WriteString(registryHeader)
	if dir := strings.TrimSpace(cacheDir); dir != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "cache_dir = %q\n", dir)
	}
	for _, entry := range Catalog() {
		if !wanted[entry.Tool.Name] {
			continue
		}
		renderTool(&b, entry.Tool)
	}

	content := b.String()
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.SetupRenderRegistryFailedFmt, err)
	}
	if _, err := registry.Parse([]byte(content), "rendered registry"); err != nil {
		return "", fmt.Errorf(messages.SetupRenderRegistryFailedFmt, err)
	}
	return content, nil
}

func renderTool(b *strings.Builder, tool registry.Tool) {
	b.WriteString("\n")
	fmt.Fprintf(b, "[tools.%s]\n", tool.Name)
	fmt.Fprintf(b, "repo = %q\n", tool.Repo)
	fmt.Fprintf(b, "server_args = [%s]\n", quoteList(tool.ServerArgs))

	oses := make([]string, 0, len(tool.Assets))
	for goos := range tool.Assets {
		oses = append(oses, goos)
	}
	sort.Strings(oses)
	for _, goos := range oses {
		b.WriteString("\n")
		fmt.Fprintf(b, "[tools.%s.assets.%s]\n", tool.Name, goos)
		arches := make([]string, 0, len(tool.Assets[goos]))
		for arch := range tool.Assets[goos] {
			arches = append(arches, arch)
		}
		sort.Strings(arches)
		for _, arch := range arches {
			fmt.Fprintf(b, "%s = %q\n", arch, tool.Assets[goos][arch])
		}
	}
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
