package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/provision"
	"github.com/lspkit/lspkit/internal/registry"
	"github.com/lspkit/lspkit/internal/terminal"
	"github.com/lspkit/lspkit/internal/update"
)

var isTerminal = terminal.IsInteractive

// rootOptions holds persistent flags shared by all subcommands.
type rootOptions struct {
	verbose      bool
	registryPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, messages.RootVerboseFlag)
	cmd.PersistentFlags().StringVar(&opts.registryPath, "registry", "", messages.RootRegistryFlag)

	cmd.AddCommand(
		newGetCmd(opts),
		newWhichCmd(opts),
		newResolveCmd(opts),
		newCachedCmd(opts),
		newStatusCmd(opts),
		newInitCmd(opts),
	)
	return cmd
}

// newLogger builds the CLI logger writing console output to stderr.
func newLogger(verbose bool, stderr io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}

// registryPath resolves the registry location from flags or the default.
func registryPath(opts *rootOptions) (string, error) {
	if strings.TrimSpace(opts.registryPath) != "" {
		return opts.registryPath, nil
	}
	return registry.DefaultPath()
}

// toolEnv bundles everything a per-tool subcommand needs.
type toolEnv struct {
	cfg          *registry.Config
	tool         registry.Tool
	engine       *provision.Engine
	adapter      *provision.Adapter
	containerDir string
	log          zerolog.Logger
}

// newToolEnv loads the registry and wires the provisioning components for one tool.
func newToolEnv(opts *rootOptions, stderr io.Writer, toolName string, cacheDirOverride string) (*toolEnv, error) {
	log := newLogger(opts.verbose, stderr)
	path, err := registryPath(opts)
	if err != nil {
		return nil, err
	}
	cfg, err := registry.LoadOrTemplate(path)
	if err != nil {
		return nil, err
	}
	tool, err := cfg.Tool(toolName)
	if err != nil {
		return nil, err
	}
	cacheRoot, err := cfg.CacheRoot(cacheDirOverride)
	if err != nil {
		return nil, err
	}
	engine := provision.NewEngine(tool, log)
	return &toolEnv{
		cfg:          cfg,
		tool:         tool,
		engine:       engine,
		adapter:      provision.NewAdapter(tool, engine, log),
		containerDir: registry.ContainerDir(cacheRoot, tool.Name),
		log:          log,
	}, nil
}

// noNetwork reports whether all network access is disabled via the environment.
func noNetwork() bool {
	return strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != ""
}
