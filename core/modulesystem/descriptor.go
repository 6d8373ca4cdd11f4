package modulesystem

import (
	"fmt"
	"reflect"

	"github.com/golobby/cast"
	"github.com/mitchellh/mapstructure"
)

// emergencyKey is reserved in both the descriptor and the module
// configuration; see Module.Emergency.
const emergencyKey = "emergency"

// Descriptor is the declarative metadata identifying a module. It is decoded
// from the raw key/value mapping of a module.desc file.
type Descriptor struct {
	Type            string   `json:"type"`
	Interface       string   `json:"interface"`
	Name            string   `json:"name"`
	RequiredModules []string `json:"requiredModules"`
	// Emergency is nil when the descriptor carries no emergency hint.
	Emergency *bool `json:"-"`
}

// DescriptorFromMap decodes a raw descriptor mapping. Values are coerced
// weakly, so YAML variants like `emergency: "true"` behave the same as real
// booleans. Unknown keys are ignored.
func DescriptorFromMap(raw map[string]any) (Descriptor, error) {
	var d Descriptor
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return Descriptor{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Descriptor{}, fmt.Errorf("decode descriptor: %w", err)
	}
	if v, ok := raw[emergencyKey]; ok {
		b := boolValue(v)
		d.Emergency = &b
	}
	return d, nil
}

// parseType maps the descriptor type string onto a module Type. "view" and
// "viewmodule" are synonyms.
func parseType(s string) (Type, bool) {
	switch s {
	case "job":
		return TypeJob, true
	case "view", "viewmodule":
		return TypeView, true
	}
	return 0, false
}

// parseInterface maps the descriptor interface string onto an Interface.
// Matching is exact: no case folding, no prefixes.
func parseInterface(s string) (Interface, bool) {
	switch s {
	case "qtplugin":
		return InterfaceQtPlugin, true
	case "process":
		return InterfaceProcess, true
	case "python":
		return InterfacePython, true
	case "pythonqt":
		return InterfacePythonQt, true
	}
	return 0, false
}

// boolValue coerces an arbitrary configuration value to a boolean. Anything
// that is not a bool and does not cast to one counts as false.
func boolValue(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	converted, err := cast.FromType(fmt.Sprintf("%v", v), reflect.TypeOf(false))
	if err != nil {
		return false
	}
	b, _ := converted.(bool)
	return b
}
