package modulesystem

// Capabilities records which optional scripting backends this build carries.
// The factory consults it instead of failing to link, so the dispatch table
// stays total and testable with either setting.
type Capabilities struct {
	// Python enables job modules implemented against the Python job
	// interface.
	Python bool
	// PythonQt enables view modules implemented against the experimental
	// PythonQt interface.
	PythonQt bool
}

// DefaultCapabilities reflects the build configuration: the python and
// pythonqt build tags switch the corresponding backends on.
func DefaultCapabilities() Capabilities {
	return Capabilities{Python: withPython, PythonQt: withPythonQt}
}
