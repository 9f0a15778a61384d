package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/config"
	"github.com/yaklabco/inkwell/pkg/editor"
	"github.com/yaklabco/inkwell/pkg/editor/extensions"
)

// setup binds config discovery and runtime construction for a command
// invocation.
type setup struct {
	cfg *config.Config
	rt  *editor.Runtime
}

// newSetup loads the config (honoring the root --config flag), validates it,
// and builds an editor runtime with the configured extensions.
func newSetup(cmd *cobra.Command) (*setup, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(configPath, workDir)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if err := cfg.Validate(builtinNames()); err != nil {
		return nil, &ConfigError{Err: err}
	}
	logging.SetLevel(string(cfg.LogLevel))
	if configPath != "" {
		logging.Default().Debug("using config", logging.FieldConfig, configPath)
	}

	exts := selectExtensions(cfg.Extensions)

	rt, err := editor.NewRuntime(exts, editor.WithLogger(logging.Default()))
	if err != nil {
		return nil, fmt.Errorf("build runtime: %w", err)
	}
	logging.Default().Debug("runtime ready", logging.FieldExtensions, cfg.Extensions)
	return &setup{cfg: cfg, rt: rt}, nil
}

// builtinNames returns the name set of the built-in extensions, for config
// validation.
func builtinNames() map[string]bool {
	known := make(map[string]bool)
	for _, ext := range extensions.Default() {
		known[ext.Name()] = true
	}
	return known
}

// selectExtensions resolves validated extension names against the built-in
// set, preserving the configured order. An empty list means all built-ins.
func selectExtensions(names []string) []editor.Extension {
	builtin := extensions.Default()
	if len(names) == 0 {
		return builtin
	}

	byName := make(map[string]editor.Extension, len(builtin))
	for _, ext := range builtin {
		byName[ext.Name()] = ext
	}

	selected := make([]editor.Extension, 0, len(names))
	for _, name := range names {
		selected = append(selected, byName[name])
	}
	return selected
}
