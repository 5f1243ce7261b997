// Package registry loads and validates the tools.toml tool registry.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/templates"
)

// ErrRegistryValidation is a sentinel that wraps registry validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrRegistryValidation) to distinguish them.
var ErrRegistryValidation = errors.New("registry validation failed")

var userConfigDir = os.UserConfigDir
var userCacheDir = os.UserCacheDir

// Tool describes one provisionable language server.
type Tool struct {
	// Name is the logical tool identity; it keys the cache container and the
	// PATH probe. Filled from the registry map key, never mutated.
	Name       string                       `toml:"-"`
	Repo       string                       `toml:"repo"`
	ServerArgs []string                     `toml:"server_args"`
	// Assets maps OS → architecture → release asset name.
	Assets map[string]map[string]string `toml:"assets"`
}

// Config is a parsed tool registry.
type Config struct {
	CacheDir string          `toml:"cache_dir"`
	Tools    map[string]Tool `toml:"tools"`
}

// Load reads and validates the registry at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.RegistryMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// LoadOrTemplate reads the registry at path, falling back to the embedded
// default registry when the file does not exist.
func LoadOrTemplate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return LoadTemplate()
	}
	if err != nil {
		return nil, fmt.Errorf(messages.RegistryMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// LoadTemplate returns the embedded default registry as a validated Config.
func LoadTemplate() (*Config, error) {
	data, err := templates.Read("tools.toml")
	if err != nil {
		return nil, fmt.Errorf(messages.RegistryFailedReadTemplate, err)
	}
	return Parse(data, "template tools.toml")
}

// Parse decodes and validates registry content. source names the origin for
// error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.RegistryInvalidFmt, source, err)
	}
	if err := validate(&cfg, source); err != nil {
		return nil, fmt.Errorf(messages.RegistryInvalidFmt, source, fmt.Errorf("%w: %w", ErrRegistryValidation, err))
	}
	for name, tool := range cfg.Tools {
		tool.Name = name
		cfg.Tools[name] = tool
	}
	return &cfg, nil
}

func validate(cfg *Config, source string) error {
	if len(cfg.Tools) == 0 {
		return fmt.Errorf(messages.RegistryNoToolsFmt, source)
	}
	for name, tool := range cfg.Tools {
		repo := strings.TrimSpace(tool.Repo)
		if repo == "" {
			return fmt.Errorf(messages.RegistryToolRepoRequiredFmt, source, name)
		}
		parts := strings.Split(repo, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf(messages.RegistryToolRepoFormFmt, source, name)
		}
		if len(tool.Assets) == 0 {
			return fmt.Errorf(messages.RegistryToolAssetsRequired, source, name)
		}
	}
	return nil
}

// Tool returns the named tool from the registry.
func (c *Config) Tool(name string) (Tool, error) {
	tool, ok := c.Tools[name]
	if !ok {
		return Tool{}, fmt.Errorf(messages.RegistryUnknownToolFmt, name)
	}
	return tool, nil
}

// ToolNames returns the registry's tool names in sorted order.
func (c *Config) ToolNames() []string {
	names := make([]string, 0, len(c.Tools))
	for name := range c.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CacheRoot resolves the cache root directory: an explicit override wins,
// then the registry's cache_dir (with ~ expansion), then the user cache
// directory.
func (c *Config) CacheRoot(override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return override, nil
	}
	if dir := strings.TrimSpace(c.CacheDir); dir != "" {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return "", fmt.Errorf(messages.RegistryExpandCacheDirFmt, dir, err)
		}
		return expanded, nil
	}
	base, err := userCacheDir()
	if err != nil {
		return "", fmt.Errorf(messages.RegistryResolveCacheDirFmt, err)
	}
	return filepath.Join(base, "lspkit"), nil
}

// ContainerDir returns the per-tool cache container under cacheRoot. The
// fetch-and-cache engine exclusively owns writes beneath it.
func ContainerDir(cacheRoot string, toolName string) string {
	return filepath.Join(cacheRoot, toolName)
}

// DefaultPath returns the default registry location in the user config directory.
func DefaultPath() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf(messages.RegistryResolvePathFmt, err)
	}
	return filepath.Join(base, "lspkit", "tools.toml"), nil
}
