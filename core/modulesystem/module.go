// Package modulesystem builds installer module instances from declarative
// descriptors. A descriptor names a module's type (job or view) and its
// execution interface; the factory validates it, selects the matching
// variant, and resolves the module's layered configuration file. Running the
// modules is the scheduler's business, not this package's.
package modulesystem

import "fmt"

// Type is the category of work a module performs.
type Type int

const (
	// TypeJob modules change system state.
	TypeJob Type = iota
	// TypeView modules present a step to the user.
	TypeView
)

// String returns a human-readable representation of the module type.
func (t Type) String() string {
	switch t {
	case TypeJob:
		return "Job Module"
	case TypeView:
		return "View Module"
	}
	return "unknown"
}

// Interface is the execution mechanism a module uses.
type Interface int

const (
	InterfaceQtPlugin Interface = iota
	InterfaceProcess
	InterfacePython
	InterfacePythonQt
)

// String returns a human-readable representation of the interface.
func (i Interface) String() string {
	switch i {
	case InterfaceQtPlugin:
		return "Qt Plugin"
	case InterfaceProcess:
		return "External process"
	case InterfacePython:
		return "Python (Boost.Python)"
	case InterfacePythonQt:
		return "Python (experimental)"
	}
	return "unknown"
}

// Module is a constructed module instance. Identity, location and
// configuration are fixed at construction time; only the loaded flag changes
// afterwards, when the owning scheduler loads the variant's payload.
type Module interface {
	// Name is the module name from the descriptor.
	Name() string
	// InstanceID is the caller-assigned id, allowing several instances of
	// one module.
	InstanceID() string
	// InstanceKey uniquely identifies the instance as "name@instanceId".
	InstanceKey() string
	Type() Type
	Interface() Interface
	// Location is the absolute path of the module directory.
	Location() string
	// RequiredModules lists instance ids that must run before this one.
	RequiredModules() []string
	// ConfigurationMap is the parsed module configuration, empty when no
	// config file was found.
	ConfigurationMap() map[string]any
	// Emergency reports whether emergency mode is in effect. It is true
	// only when both the descriptor and the resolved configuration
	// explicitly confirm it.
	Emergency() bool
	Loaded() bool

	base() *baseModule
}

// baseModule carries the state shared by every variant. Variants embed it
// and contribute only their (Type, Interface) identity.
type baseModule struct {
	name             string
	instanceID       string
	directory        string
	requiredModules  []string
	configurationMap map[string]any
	maybeEmergency   bool
	emergency        bool
	loaded           bool
}

func (b *baseModule) Name() string              { return b.name }
func (b *baseModule) InstanceID() string        { return b.instanceID }
func (b *baseModule) Location() string          { return b.directory }
func (b *baseModule) RequiredModules() []string { return b.requiredModules }
func (b *baseModule) Emergency() bool           { return b.emergency }
func (b *baseModule) Loaded() bool              { return b.loaded }

func (b *baseModule) InstanceKey() string {
	return fmt.Sprintf("%s@%s", b.name, b.instanceID)
}

func (b *baseModule) ConfigurationMap() map[string]any {
	if b.configurationMap == nil {
		return map[string]any{}
	}
	return b.configurationMap
}

func (b *baseModule) base() *baseModule { return b }

// initFrom copies the descriptor fields the instance owns.
func (b *baseModule) initFrom(d Descriptor) {
	b.name = d.Name
	b.requiredModules = d.RequiredModules
	if d.Emergency != nil {
		b.maybeEmergency = *d.Emergency
	}
}
