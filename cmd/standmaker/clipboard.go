package main

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyToClipboard puts data on the system clipboard as text. The clipboard
// is initialized on first use; headless systems report the error then.
func copyToClipboard(data []byte) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
