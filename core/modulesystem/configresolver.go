package modulesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configCandidates builds the ordered list of configuration file locations.
// An overridden application data dir is the single authority. Otherwise a
// debug run first tries the source checkout, then the administrator
// directory, then the installed default.
func configCandidates(moduleName, configFileName string, env Environment) []string {
	if env.AppDataDirOverridden {
		return []string{filepath.Join(env.AppDataDir, "modules", configFileName)}
	}

	var paths []string
	if env.DebugMode {
		wd := env.WorkingDir
		if wd == "" {
			wd, _ = os.Getwd()
		}
		paths = append(paths, filepath.Join(wd, "src", "modules", moduleName, configFileName))
	}
	sysDir := env.SystemConfigDir
	if sysDir == "" {
		sysDir = DefaultSystemConfigDir
	}
	paths = append(paths,
		filepath.Join(sysDir, configFileName),
		filepath.Join(env.AppDataDir, "modules", configFileName),
	)
	return paths
}

// resolveConfiguration reads the first existing, readable candidate as a
// YAML document and folds it into the instance. The search stops at the
// first file that opens, even if it turns out empty; no candidate at all is
// not an error. A top-level shape other than a mapping is logged and
// treated as an empty configuration; a YAML syntax error aborts the whole
// module build.
func (b *baseModule) resolveConfiguration(configFileName string, env Environment) error {
	for _, path := range configCandidates(b.name, configFileName, env) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
		if doc == nil {
			// Empty config files are valid, but aren't maps.
			return nil
		}
		cfg, ok := doc.(map[string]any)
		if !ok {
			env.logger().Warnf("bad module configuration format in %s", path)
			return nil
		}

		b.configurationMap = cfg
		if v, present := cfg[emergencyKey]; present {
			// Emergency mode needs both layers to affirm it: the
			// descriptor hint alone or the config key alone stays off.
			b.emergency = b.maybeEmergency && boolValue(v)
		}
		return nil
	}
	return nil
}
