//go:build ghostwrite_offline

package devmode

const Enabled = true
