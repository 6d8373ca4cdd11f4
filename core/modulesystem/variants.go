package modulesystem

// The concrete variants differ only in how the surrounding application
// executes them; construction and configuration are shared. Each variant
// contributes its fixed (Type, Interface) identity.

// PluginViewModule is a view step backed by a natively compiled UI plugin.
type PluginViewModule struct{ baseModule }

func (*PluginViewModule) Type() Type           { return TypeView }
func (*PluginViewModule) Interface() Interface { return InterfaceQtPlugin }

// PythonQtViewModule is a view step driven by the experimental PythonQt
// scripting backend. Available only in builds with the pythonqt tag.
type PythonQtViewModule struct{ baseModule }

func (*PythonQtViewModule) Type() Type           { return TypeView }
func (*PythonQtViewModule) Interface() Interface { return InterfacePythonQt }

// PluginJobModule is a job implemented as a natively compiled plugin.
type PluginJobModule struct{ baseModule }

func (*PluginJobModule) Type() Type           { return TypeJob }
func (*PluginJobModule) Interface() Interface { return InterfaceQtPlugin }

// ProcessJobModule is a job that runs an external command.
type ProcessJobModule struct{ baseModule }

func (*ProcessJobModule) Type() Type           { return TypeJob }
func (*ProcessJobModule) Interface() Interface { return InterfaceProcess }

// PythonJobModule is a job implemented against the Python job interface.
// Available only in builds with the python tag.
type PythonJobModule struct{ baseModule }

func (*PythonJobModule) Type() Type           { return TypeJob }
func (*PythonJobModule) Interface() Interface { return InterfacePython }
