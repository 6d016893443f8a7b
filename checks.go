//go:build !nochecks

package model

// argChecks enables argument validation at statistics registration
// boundaries. Build with -tags nochecks to elide the checks in optimized
// builds.
const argChecks = true
