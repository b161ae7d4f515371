// Command embersolid reads a host's global bindings from a JSON file and
// solidifies them into Go source that reconstructs them as frozen
// constants.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/emberlang/ember/internal/config"
	"github.com/emberlang/ember/internal/solidify"
	"github.com/emberlang/ember/internal/value"
	"github.com/emberlang/ember/internal/vm"
)

var (
	manifestDir  = flag.String("manifest", ".", "project directory containing ember.toml")
	inputFile    = flag.String("input", "", "JSON file of global bindings to solidify (overrides ember.toml input.path)")
	outputFile   = flag.String("output", "", "output path for solidified Go source (overrides ember.toml solidify.output)")
	moduleName   = flag.String("name", "", "name for the emitted module (defaults to project name)")
	literalMode  = flag.Bool("literal", false, "use weak/literal constructor forms instead of interned ones")
	builtinCount = flag.Int("builtins", 0, "VM builtin-table size for global-access validation (0 = use ember.toml)")
	prefix       = flag.String("prefix", "", "naming prefix for solidified closures")
	verbose      = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("embersolid failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = ""
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "embersolid: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func run(logger *zap.Logger) error {
	manifest, err := config.Load(*manifestDir)
	if err != nil {
		logger.Warn("no ember.toml manifest found, using flag-only defaults", zap.String("dir", *manifestDir), zap.Error(err))
		manifest = config.GenerateDefault(*manifestDir)
	}

	in := *inputFile
	if in == "" {
		in = manifest.InputPath()
	}

	name := *moduleName
	if name == "" {
		name = manifest.Project.Name
	}
	if name == "" {
		name = "solidified"
	}

	builtins := *builtinCount
	if builtins == 0 {
		builtins = manifest.Solidify.BuiltinCount
	}

	pfx := *prefix
	if pfx == "" {
		pfx = manifest.Solidify.Prefix
	}

	lit := *literalMode || manifest.Solidify.LiteralMode

	out := *outputFile
	if out == "" {
		out = manifest.Solidify.Output
	}
	if out == "" {
		out = "solidified.go"
	}

	logger.Info("loading globals",
		zap.String("input", in),
		zap.String("module", name),
		zap.Int("builtins", builtins),
	)

	mod, err := loadModule(in, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}

	sink, closeSink, err := solidify.NewFileSink(out)
	if err != nil {
		return fmt.Errorf("open output %s: %w", out, err)
	}
	defer func() { _ = closeSink() }()

	res, err := solidify.Dump(mod, solidify.Options{
		LiteralMode:  lit,
		Sink:         sink,
		Prefix:       pfx,
		BuiltinCount: builtins,
	})
	if err != nil {
		return fmt.Errorf("solidify: %w", err)
	}

	for _, w := range res.Warnings {
		logger.Warn("solidify", zap.String("message", w.Message))
	}
	logger.Info("wrote solidified module", zap.String("output", out), zap.Int("warnings", len(res.Warnings)))
	return nil
}

// loadModule reads a JSON object mapping global names to arbitrary JSON
// values, converts each through vm.FromGo and vm.ToSolidifyValue, and
// wraps the result in a *value.Module. This simulates the host boundary
// a real embedding VM would cross handing its globals to the solidifier
// (see internal/vm/bridge.go); any value this boundary cannot represent
// (closures, classes) is built directly against internal/value instead
// of round-tripping through JSON.
func loadModule(path, name string) (*value.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	names := make([]string, 0, len(raw))
	for k := range raw {
		names = append(names, k)
	}
	sort.Strings(names)

	table := value.NewMap()
	for _, k := range names {
		hostVal, err := vm.FromGo(raw[k])
		if err != nil {
			fmt.Fprintf(os.Stderr, "embersolid: skipping global %q: %v\n", k, err)
			continue
		}
		cv, err := vm.ToSolidifyValue(hostVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "embersolid: skipping global %q: %v\n", k, err)
			continue
		}
		table.Set(value.Str(k), cv)
	}

	return &value.Module{Name: name, Table: table}, nil
}
