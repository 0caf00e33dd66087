package entities

import "time"

// TranscriptRole says who wrote a transcript entry
type TranscriptRole string

const (
	TranscriptUser      TranscriptRole = "user"
	TranscriptAssistant TranscriptRole = "assistant"
	TranscriptError     TranscriptRole = "error"
)

// TranscriptEntry is one line of the assistant chat
type TranscriptEntry struct {
	Role TranscriptRole `json:"role"`
	Text string         `json:"text"`
	At   time.Time      `json:"at"`
}

// AssistantMessageInput is a message typed into the assistant widget
type AssistantMessageInput struct {
	Message string `json:"message" validate:"required,max=4000"`
}
