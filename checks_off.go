//go:build nochecks

package model

// argChecks is disabled: registration calls perform no argument validation
// and malformed input leads to undefined arithmetic downstream.
const argChecks = false
