// Package app hosts the ebiten window front-end. It is only built with the
// ebiten tag.
package app
