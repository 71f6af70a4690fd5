// Package mach reads memory statistics of the current task from the
// Mach kernel interfaces in libsystem_kernel, loaded at runtime with
// purego. The raw structures returned by the kernel are decoded with
// hard-coded layout expectations (see the consts files), which the test
// suite cross-checks against the cgo probe in internal/layout.
//
// The package is darwin-only; on other platforms it is empty.
package mach
