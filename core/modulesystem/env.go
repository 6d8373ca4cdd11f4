package modulesystem

import "github.com/osforge/calago/core/logger"

// DefaultSystemConfigDir is the administrator override directory consulted
// between the debug checkout path and the installed defaults. The layout is
// Calamares-compatible so existing module configurations keep working.
const DefaultSystemConfigDir = "/etc/calamares/modules"

// Environment is the read-only context consulted during module
// construction: data directories, build capabilities and the logger. It
// replaces the ambient globals of a typical installer process so the
// factory and the configuration resolver stay testable in isolation.
type Environment struct {
	// AppDataDir is the root of the installed application data.
	AppDataDir string
	// AppDataDirOverridden marks AppDataDir as a global override root. The
	// resolver then consults it exclusively, ignoring every other
	// candidate location.
	AppDataDirOverridden bool
	// SystemConfigDir is the administrator override directory. Empty means
	// DefaultSystemConfigDir.
	SystemConfigDir string
	// WorkingDir anchors the debug-mode source-checkout search path. Empty
	// means the process working directory.
	WorkingDir string
	// DebugMode adds the source-checkout candidate so modules can be
	// tested from a checkout without installation.
	DebugMode bool
	// Capabilities gates the optional scripting backends.
	Capabilities Capabilities
	// Log receives the resolver's diagnostics. Nil is fine.
	Log logger.Logger
}

// DefaultEnvironment returns an Environment matching the build
// configuration, with all paths at their installed defaults.
func DefaultEnvironment() Environment {
	return Environment{
		SystemConfigDir: DefaultSystemConfigDir,
		Capabilities:    DefaultCapabilities(),
	}
}

func (e Environment) logger() logger.Logger {
	if e.Log == nil {
		return nopLogger{}
	}
	return e.Log
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
