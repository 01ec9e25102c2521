//go:build !ebiten

package main

const windowAvailable = false

func runWindow(*session) error {
	return errNoWindow
}
