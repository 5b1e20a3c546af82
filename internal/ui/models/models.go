// Package models holds the UI's view state.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is one chat entry to render.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// State is everything the views need to draw a frame.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Messages []Message

	Width  int
	Height int

	// Status bar
	StatusPhase   string // "ready", "thinking", "executing", "done"
	StatusMessage string
	DotCount      int
	CurrentModel  string

	// CanSubmit is set while the agent is waiting for the user; input typed
	// mid-turn stays in the box until the agent asks again.
	CanSubmit bool
}
