//go:build python

package modulesystem

const withPython = true
