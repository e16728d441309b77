// Package version contains information on the current version of the
// toolkit. It is split from the main packages for easy use by the drivers.
package version

// Current is the string representing the current version of cfgkit.
const Current = "0.1.0"
