// Package ui draws the window overlays: grid lines, marker, selection and
// the status panel. It is only built with the ebiten tag.
package ui
