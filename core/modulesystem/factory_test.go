package modulesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testEnv returns an Environment whose search paths all live under temp
// directories, so no config file is found unless a test plants one.
func testEnv(t *testing.T) Environment {
	t.Helper()
	return Environment{
		AppDataDir:      filepath.Join(t.TempDir(), "share"),
		SystemConfigDir: filepath.Join(t.TempDir(), "etc"),
	}
}

func descriptor(typ, iface string) map[string]any {
	return map[string]any{"type": typ, "interface": iface, "name": "welcome"}
}

func TestFromDescriptor_ValidPairs(t *testing.T) {
	env := testEnv(t)
	env.Capabilities = Capabilities{Python: true, PythonQt: true}
	dir := t.TempDir()

	cases := []struct {
		typ, iface string
		wantType   Type
		wantIface  Interface
	}{
		{"view", "qtplugin", TypeView, InterfaceQtPlugin},
		{"viewmodule", "qtplugin", TypeView, InterfaceQtPlugin},
		{"view", "pythonqt", TypeView, InterfacePythonQt},
		{"job", "qtplugin", TypeJob, InterfaceQtPlugin},
		{"job", "process", TypeJob, InterfaceProcess},
		{"job", "python", TypeJob, InterfacePython},
	}
	for _, c := range cases {
		m, err := FromDescriptor(descriptor(c.typ, c.iface), "welcome", "welcome.conf", dir, env)
		if err != nil {
			t.Fatalf("(%s, %s): %v", c.typ, c.iface, err)
		}
		if m.Type() != c.wantType || m.Interface() != c.wantIface {
			t.Errorf("(%s, %s): got %v/%v", c.typ, c.iface, m.Type(), m.Interface())
		}
		if len(m.ConfigurationMap()) != 0 {
			t.Errorf("(%s, %s): expected empty configuration", c.typ, c.iface)
		}
		if m.Emergency() {
			t.Errorf("(%s, %s): emergency without confirmation", c.typ, c.iface)
		}
	}
}

func TestFromDescriptor_MissingFields(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	cases := []map[string]any{
		{},
		{"type": "job"},
		{"interface": "process"},
		{"type": "", "interface": "process"},
		{"type": "job", "interface": ""},
	}
	for i, desc := range cases {
		m, err := FromDescriptor(desc, "welcome", "welcome.conf", dir, env)
		if !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("case %d: expected ErrInvalidDescriptor, got %v", i, err)
		}
		if m != nil {
			t.Errorf("case %d: instance escaped a failed build", i)
		}
	}
}

func TestFromDescriptor_UnknownType(t *testing.T) {
	env := testEnv(t)
	_, err := FromDescriptor(descriptor("batch", "process"), "welcome", "welcome.conf", t.TempDir(), env)
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestFromDescriptor_BadInterface(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	cases := []struct{ typ, iface string }{
		{"view", "bogus"},
		{"view", "process"},
		{"view", "python"},
		{"job", "pythonqt"},
		{"job", "shell"},
	}
	for _, c := range cases {
		m, err := FromDescriptor(descriptor(c.typ, c.iface), "welcome", "welcome.conf", dir, env)
		if !errors.Is(err, ErrInvalidModule) || !errors.Is(err, ErrUnsupportedInterface) {
			t.Errorf("(%s, %s): expected interface error, got %v", c.typ, c.iface, err)
		}
		if m != nil {
			t.Errorf("(%s, %s): instance escaped a failed build", c.typ, c.iface)
		}
	}
}

func TestFromDescriptor_DisabledBackends(t *testing.T) {
	env := testEnv(t) // both scripting backends off
	dir := t.TempDir()
	for _, c := range []struct{ typ, iface string }{
		{"job", "python"},
		{"view", "pythonqt"},
	} {
		_, err := FromDescriptor(descriptor(c.typ, c.iface), "welcome", "welcome.conf", dir, env)
		if !errors.Is(err, ErrUnsupportedInterface) {
			t.Errorf("(%s, %s): expected ErrUnsupportedInterface, got %v", c.typ, c.iface, err)
		}
	}
}

func TestFromDescriptor_BadDirectory(t *testing.T) {
	env := testEnv(t)

	_, err := FromDescriptor(descriptor("job", "process"), "welcome", "welcome.conf",
		filepath.Join(t.TempDir(), "missing"), env)
	if !errors.Is(err, ErrInvalidDirectory) {
		t.Fatalf("missing dir: expected ErrInvalidDirectory, got %v", err)
	}

	// A plain file is not a module directory.
	file := filepath.Join(t.TempDir(), "module.desc")
	if err := os.WriteFile(file, []byte("type: job\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = FromDescriptor(descriptor("job", "process"), "welcome", "welcome.conf", file, env)
	if !errors.Is(err, ErrInvalidDirectory) {
		t.Fatalf("file as dir: expected ErrInvalidDirectory, got %v", err)
	}
}

func TestFromDescriptor_AbsoluteLocation(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	m, err := FromDescriptor(descriptor("job", "process"), "welcome", "welcome.conf", dir, env)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !filepath.IsAbs(m.Location()) {
		t.Fatalf("location not absolute: %s", m.Location())
	}
}

func TestInstanceKey(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	cases := []struct {
		name, id string
		want     string
	}{
		{"welcome", "welcome", "welcome@welcome"},
		{"shellprocess", "logs", "shellprocess@logs"},
		{"welcome", "", "welcome@"},
	}
	for _, c := range cases {
		desc := map[string]any{"type": "job", "interface": "process", "name": c.name}
		m, err := FromDescriptor(desc, c.id, c.name+".conf", dir, env)
		if err != nil {
			t.Fatalf("%s@%s: %v", c.name, c.id, err)
		}
		if m.InstanceKey() != c.want {
			t.Errorf("instance key %q, want %q", m.InstanceKey(), c.want)
		}
		if m.InstanceID() != c.id {
			t.Errorf("instance id %q, want %q", m.InstanceID(), c.id)
		}
	}
}

func TestFromDescriptor_RequiredModules(t *testing.T) {
	env := testEnv(t)
	desc := map[string]any{
		"type":            "job",
		"interface":       "process",
		"name":            "umount",
		"requiredModules": []any{"mount"},
	}
	m, err := FromDescriptor(desc, "umount", "umount.conf", t.TempDir(), env)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	req := m.RequiredModules()
	if len(req) != 1 || req[0] != "mount" {
		t.Fatalf("required modules %v", req)
	}
}
