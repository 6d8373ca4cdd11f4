package modulesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

type variantKey struct {
	kind  Type
	iface Interface
}

type variant struct {
	construct func() Module
	// available is nil for variants present in every build.
	available func(Capabilities) bool
}

// variants is the dispatch table from (type, interface) to a constructor.
// Optional backends stay in the table with an availability check instead of
// disappearing from builds without them, so selection failures are reported
// rather than unresolvable.
var variants = map[variantKey]variant{
	{TypeView, InterfaceQtPlugin}: {construct: func() Module { return &PluginViewModule{} }},
	{TypeView, InterfacePythonQt}: {
		construct: func() Module { return &PythonQtViewModule{} },
		available: func(c Capabilities) bool { return c.PythonQt },
	},
	{TypeJob, InterfaceQtPlugin}: {construct: func() Module { return &PluginJobModule{} }},
	{TypeJob, InterfaceProcess}:  {construct: func() Module { return &ProcessJobModule{} }},
	{TypeJob, InterfacePython}: {
		construct: func() Module { return &PythonJobModule{} },
		available: func(c Capabilities) bool { return c.Python },
	},
}

// FromDescriptor validates the descriptor, selects the matching variant and
// returns a fully configured module instance. Construction is
// all-or-nothing: on any failure no instance escapes, only a wrapped
// sentinel error naming the instance and the offending value.
func FromDescriptor(descriptor map[string]any, instanceID, configFileName, moduleDirectory string, env Environment) (Module, error) {
	d, err := DescriptorFromMap(descriptor)
	if err != nil {
		return nil, fmt.Errorf("%w: instance %q: %v", ErrInvalidDescriptor, instanceID, err)
	}
	if d.Type == "" || d.Interface == "" {
		return nil, fmt.Errorf("%w: missing type or interface for instance %q", ErrInvalidDescriptor, instanceID)
	}
	kind, ok := parseType(d.Type)
	if !ok {
		return nil, fmt.Errorf("%w: bad module type %q for instance %q", ErrInvalidDescriptor, d.Type, instanceID)
	}

	construct, err := selectVariant(kind, d.Interface, env.Capabilities)
	if err != nil {
		return nil, fmt.Errorf("%w: instance %q, type %q, interface %q: %w",
			ErrInvalidModule, instanceID, d.Type, d.Interface, err)
	}
	m := construct()

	dir, err := checkDirectory(moduleDirectory)
	if err != nil {
		return nil, fmt.Errorf("%w: %q for instance %q: %v", ErrInvalidDirectory, moduleDirectory, instanceID, err)
	}

	b := m.base()
	b.directory = dir
	b.instanceID = instanceID
	b.initFrom(d)

	if err := b.resolveConfiguration(configFileName, env); err != nil {
		return nil, fmt.Errorf("instance %q: %w", instanceID, err)
	}
	return m, nil
}

func selectVariant(kind Type, ifaceString string, caps Capabilities) (func() Module, error) {
	iface, ok := parseInterface(ifaceString)
	if !ok {
		return nil, fmt.Errorf("%w: bad interface %q", ErrUnsupportedInterface, ifaceString)
	}
	v, ok := variants[variantKey{kind, iface}]
	if !ok {
		return nil, fmt.Errorf("%w: interface %q is not valid for a %s", ErrUnsupportedInterface, ifaceString, kind)
	}
	if v.available != nil && !v.available(caps) {
		return nil, fmt.Errorf("%w: %s modules are not supported in this build", ErrUnsupportedInterface, iface)
	}
	return v.construct, nil
}

// checkDirectory resolves the module directory to an absolute path after
// verifying it exists, is a directory and is readable.
func checkDirectory(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	f, err := os.Open(dir)
	if err != nil {
		return "", err
	}
	_ = f.Close()
	return filepath.Abs(dir)
}
