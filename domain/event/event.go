package event

import (
	"chatravel/domain"
)

// MessagePosted is published on the notification bus after a message has
// been persisted. It is a hint that new data exists, not the payload of
// record: consumers re-query the store.
type MessagePosted struct {
	Message domain.Message
}

func (e MessagePosted) ConversationID() string {
	return e.Message.ConversationID
}

// DiscoverableUser is published on the interest-match side bus whenever a
// user registers or changes interests.
type DiscoverableUser struct {
	UserID    string
	Name      string
	Interests []domain.Interest
}
