//go:build dialog
// +build dialog

package main

import (
	"github.com/sqweek/dialog"
)

// openSaveDialog opens the native save dialog and returns the chosen path.
func openSaveDialog(title string) (string, error) {
	return dialog.File().Filter("SVG files", "svg").Title(title).Save()
}
