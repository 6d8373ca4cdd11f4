//go:build !pythonqt

package modulesystem

const withPythonQt = false
