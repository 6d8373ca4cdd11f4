//go:build !python

package modulesystem

const withPython = false
