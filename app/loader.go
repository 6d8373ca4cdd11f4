// Package app wires the application settings to the module system and
// orchestrates loading a whole modules tree.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/osforge/calago/config"
	"github.com/osforge/calago/core/logger"
	"github.com/osforge/calago/core/modulesystem"
	infralogger "github.com/osforge/calago/infra/logger"
	"github.com/osforge/calago/internal/eventbus"
)

// descriptorFileName is the per-module metadata file inside each module
// directory.
const descriptorFileName = "module.desc"

// LoadEvent reports the outcome of one module build.
type LoadEvent struct {
	// InstanceKey identifies the module; for builds that failed before an
	// instance existed it falls back to the directory name.
	InstanceKey string
	Err         error
}

// Loader scans a modules directory and builds every module it finds.
// A module that fails to build is reported and skipped; the remaining
// modules still load. That policy belongs here, not in the factory.
type Loader struct {
	env modulesystem.Environment
	dir string
	log logger.Logger
	bus *eventbus.Bus[LoadEvent]
}

// New creates a Loader from the application settings.
func New(cfg *config.Settings, log logger.Logger) *Loader {
	if log == nil {
		log = infralogger.NopLogger{}
	}
	env := modulesystem.DefaultEnvironment()
	env.AppDataDir = cfg.EffectiveAppDataDir()
	env.AppDataDirOverridden = cfg.OverrideAppDataDir != ""
	if cfg.SystemConfigDir != "" {
		env.SystemConfigDir = cfg.SystemConfigDir
	}
	env.DebugMode = cfg.Debug
	env.Log = log
	return &Loader{
		env: env,
		dir: cfg.ModulesDir,
		log: log,
		bus: eventbus.New[LoadEvent](),
	}
}

// Events exposes the load progress stream. Delivery is best-effort (slow
// subscribers drop events); anything that must see every failure belongs on
// the failures slice LoadAll returns, not here.
func (l *Loader) Events() <-chan LoadEvent { return l.bus.Subscribe() }

// Close shuts the event stream down.
func (l *Loader) Close() { l.bus.Close() }

// LoadAll builds every module under the modules directory, in directory
// name order. Directories without a descriptor are ignored. Build failures
// are logged, published and skipped, and come back as one LoadEvent per
// failed module; the error return covers only the directory scan itself.
func (l *Loader) LoadAll() ([]modulesystem.Module, []LoadEvent, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read modules dir: %w", err)
	}
	var modules []modulesystem.Module
	var failures []LoadEvent
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m, err := l.loadOne(e.Name())
		if err != nil {
			ev := LoadEvent{InstanceKey: e.Name(), Err: err}
			l.log.Errorf("module %s failed to load: %v", e.Name(), err)
			l.bus.Publish(ev)
			failures = append(failures, ev)
			continue
		}
		if m == nil {
			continue // no descriptor, not a module directory
		}
		l.log.Infof("loaded module %s (%s, %s)", m.InstanceKey(), m.Type(), m.Interface())
		l.bus.Publish(LoadEvent{InstanceKey: m.InstanceKey()})
		modules = append(modules, m)
	}
	return modules, failures, nil
}

// loadOne builds the module living in the named subdirectory. It returns
// (nil, nil) when the directory carries no descriptor.
func (l *Loader) loadOne(name string) (modulesystem.Module, error) {
	dir := filepath.Join(l.dir, name)
	data, err := os.ReadFile(filepath.Join(dir, descriptorFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var desc map[string]any
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", descriptorFileName, err)
	}

	// The module name must match its parent directory: the config file
	// name and the debug-mode checkout path are both derived from it.
	if n, ok := desc["name"].(string); ok && n != "" && n != name {
		return nil, fmt.Errorf("module name %q does not match its directory %q", n, name)
	}
	if _, ok := desc["name"]; !ok {
		desc["name"] = name
	}

	// The default instance id is the module name; custom instances get
	// their own ids from whoever sequences them.
	return modulesystem.FromDescriptor(desc, name, name+".conf", dir, l.env)
}
