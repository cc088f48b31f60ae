package domain

type PostMessageCommand struct {
	ConversationID string
	SenderID       string
	Text           string
}
