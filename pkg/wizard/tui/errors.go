package tui

import "errors"

// ErrAborted is returned when the user interrupts the wizard.
var ErrAborted = errors.New("tui: wizard aborted")
