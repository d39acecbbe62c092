//go:build !ghostwrite_offline

package devmode

// Enabled gates the offline mock-data fallback. Release builds compile
// with it hard-wired off so fabricated sessions can never ship active.
const Enabled = false
