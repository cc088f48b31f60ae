package domain

import (
	"time"
)

// Interest is the shared-interest tag that pairs travellers together.
type Interest string

const (
	Sports           Interest = "SPORTS"
	Trekking         Interest = "TREKKING"
	Sightseeing      Interest = "SIGHTSEEING"
	Food             Interest = "FOOD"
	Culture          Interest = "CULTURE"
	OffTheBeatenPath Interest = "OFF_THE_BEATEN_TRACK"
)

var allInterests = []Interest{Sports, Trekking, Sightseeing, Food, Culture, OffTheBeatenPath}

// ParseInterest returns the known interest matching value, or false
// for anything else. Unknown values are skipped by callers rather than
// rejected, matching the lenient registration behavior of the API.
func ParseInterest(value string) (Interest, bool) {
	for _, interest := range allInterests {
		if string(interest) == value {
			return interest, true
		}
	}
	return "", false
}

// ParseInterests keeps the values it recognizes and drops the rest.
func ParseInterests(values []string) []Interest {
	var interests []Interest
	for _, v := range values {
		if interest, ok := ParseInterest(v); ok {
			interests = append(interests, interest)
		}
	}
	return interests
}

type User struct {
	UserID    string     `json:"userId"`
	Name      string     `json:"name"`
	Interests []Interest `json:"interests"`
}

// HasAnyInterest reports whether the user shares at least one interest
// with the given set.
func (u User) HasAnyInterest(interests []Interest) bool {
	for _, mine := range u.Interests {
		for _, theirs := range interests {
			if mine == theirs {
				return true
			}
		}
	}
	return false
}

// Conversation pairs two users over a shared interest. Participants are
// fixed at creation.
type Conversation struct {
	ConversationID string   `json:"conversationId"`
	FirstUserID    string   `json:"firstUserId"`
	SecondUserID   string   `json:"secondUserId"`
	Interest       Interest `json:"interest"`
}

func (c Conversation) HasParticipant(userID string) bool {
	return c.FirstUserID == userID || c.SecondUserID == userID
}

// Message is immutable once created. CreatedAt is the ordering authority
// within a conversation; it crosses the wire as an RFC 3339 string.
type Message struct {
	MessageID      string    `json:"messageId"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreatedAtISO formats the creation time the way clients exchange it.
func (m Message) CreatedAtISO() string {
	return m.CreatedAt.UTC().Format(time.RFC3339Nano)
}
