package modulesystem

import "errors"

// Construction errors. Each aborts the module build; callers match with
// errors.Is and the wrapped message names the instance and offending value.
var (
	// Descriptor errors
	ErrInvalidDescriptor    = errors.New("bad module descriptor")
	ErrUnsupportedInterface = errors.New("unsupported module interface")
	ErrInvalidModule        = errors.New("no module variant matched")

	// Filesystem errors
	ErrInvalidDirectory = errors.New("bad module directory")

	// Configuration errors
	ErrConfigParse = errors.New("module configuration parse error")
)
