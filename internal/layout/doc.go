// Package layout reports sizes and field offsets of the Mach kernel
// structures that package mach decodes from raw bytes, measured by the C
// compiler against the system headers. It is only available on darwin
// builds with cgo enabled; everywhere else the package is empty.
//
// Every accessor returns a value fixed at compile time. The numbers are
// meant to be compared against the hard-coded expectations in package
// mach, so that a layout change in the kernel headers is caught by the
// test suite instead of corrupting decoded statistics.
package layout
