package main

import (
	"github.com/ebitenui/ebitenui/widget"
)

// StandUI holds the widgets the game updates after the form is built.
type StandUI struct {
	LanguageList *widget.List
	OutputInput  *widget.TextInput
	SaveButton   *widget.Button
	CopyButton   *widget.Button
	Status       *widget.Label
}

// SetLanguages replaces the language entries and selects current. The list
// fires its selection event on the next UI update; StandMaker.setLanguage
// ignores a selection of the language already active.
func (s *StandUI) SetLanguages(codes []string, current string) {
	entries := make([]any, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, c)
	}
	s.LanguageList.SetEntries(entries)
	s.LanguageList.SetSelectedEntry(current)
}

func (s *StandUI) SetSaveEnabled(enabled bool) {
	s.SaveButton.GetWidget().Disabled = !enabled
}

func (s *StandUI) SetStatus(text string) {
	s.Status.Label = text
}

// UIActions are the callbacks of the buttons that leave the form.
type UIActions struct {
	OnSave     func()
	OnCopy     func()
	OnBrowse   func()
	OnLanguage func(code string)
}
