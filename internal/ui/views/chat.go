package views

import (
	"strings"

	"github.com/jmallia/scribe/internal/ui/models"
	"github.com/jmallia/scribe/internal/ui/services"
)

// RenderChat renders the message history.
func RenderChat(s models.State) string {
	if len(s.Messages) == 0 {
		return "No messages yet. Type a message to start."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport.
func FormatChatContent(messages []models.Message, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		if msg.Role == "user" {
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		} else {
			lines = append(lines, AssistantMessageStyle.Render(services.RenderMarkdown(msg.Content, width, renderer)))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
