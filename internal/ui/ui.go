// Package ui implements the terminal front end on Bubble Tea. The event
// loop runs on its own goroutine; the agent talks to it through channels
// behind the UserInterface methods.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallia/scribe/internal/ui/services"
)

// UI implements UserInterface using Bubble Tea.
type UI struct {
	program *tea.Program

	// Agent -> UI
	inputReq    chan inputRequest
	inputResp   chan string
	statusChan  chan statusMsg
	messageChan chan string

	// Closed by the event loop once it can accept requests.
	readyChan chan struct{}
}

type inputRequest struct {
	prompt string
}

type statusMsg struct {
	phase   string
	message string
}

// Channels holds the plumbing between the agent goroutine and the UI.
type Channels struct {
	InputReq    chan inputRequest
	InputResp   chan string
	StatusChan  chan statusMsg
	MessageChan chan string
	ReadyChan   chan struct{}
}

// NewChannels creates the channel set with default buffers. Status and
// message channels are buffered so tool execution never blocks on a slow
// redraw.
func NewChannels() *Channels {
	return &Channels{
		InputReq:    make(chan inputRequest),
		InputResp:   make(chan string),
		StatusChan:  make(chan statusMsg, 10),
		MessageChan: make(chan string, 10),
		ReadyChan:   make(chan struct{}),
	}
}

// New creates the Bubble Tea UI.
func New(channels *Channels, renderer services.MarkdownRenderer, modelName string) *UI {
	ui := &UI{
		inputReq:    channels.InputReq,
		inputResp:   channels.InputResp,
		statusChan:  channels.StatusChan,
		messageChan: channels.MessageChan,
		readyChan:   channels.ReadyChan,
	}

	model := newBubbleTeaModel(
		channels.InputReq,
		channels.InputResp,
		channels.StatusChan,
		channels.MessageChan,
		channels.ReadyChan,
		renderer,
		modelName,
	)

	ui.program = tea.NewProgram(model, tea.WithAltScreen())
	return ui
}

// Start runs the event loop until the user quits. It blocks.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// Quit stops the event loop.
func (u *UI) Quit() {
	u.program.Quit()
}

// Ready returns a channel closed when the UI accepts requests.
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}

// ReadInput blocks until the user submits a line.
func (u *UI) ReadInput(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.inputReq <- inputRequest{prompt: prompt}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case response := <-u.inputResp:
			return response, nil
		}
	}
}

// WriteStatus updates the status bar. Drops the update if the UI is behind.
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{phase: phase, message: message}:
	default:
	}
}

// WriteMessage appends an agent response to the chat.
func (u *UI) WriteMessage(content string) {
	select {
	case u.messageChan <- content:
	default:
	}
}
