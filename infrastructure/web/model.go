package web

import (
	"chatravel/domain"
)

type CreateOrUpdateUserRequest struct {
	UserID    string   `json:"userId" validate:"required"`
	Name      string   `json:"name"`
	Interests []string `json:"interests"`
}

type CreateConversationRequest struct {
	FirstUserID  string `json:"firstUserId" validate:"required"`
	SecondUserID string `json:"secondUserId" validate:"required"`
	Interest     string `json:"interest"`
}

type CreateMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	SenderID       string `json:"senderId" validate:"required"`
	Text           string `json:"text"`
}

type CreateMessageResponse struct {
	MessageID string `json:"messageId"`
}

type CreateConversationResponse struct {
	ConversationID string `json:"conversationId"`
}

type MessagesResponse struct {
	Messages   []domain.Message `json:"messages"`
	ServerTime string           `json:"serverTime"`
}

type UsersResponse struct {
	Users []domain.User `json:"users"`
}

type ConversationsResponse struct {
	Conversations []domain.Conversation `json:"conversations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
