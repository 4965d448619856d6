// Package universe stores what lives in each DMX universe: the devices patched
// into it and the manual channel overrides applied to it.
package universe
