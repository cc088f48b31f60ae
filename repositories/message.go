//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chatravel/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	AddMessage(conversationID, senderID, text string, now time.Time) (domain.Message, error)
	GetMessages(conversationID string, since *time.Time) ([]domain.Message, error)
	StartConversation(firstUserID, secondUserID string, interest domain.Interest) (domain.Conversation, error)
	GetConversations(userID string) ([]domain.Conversation, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// AddMessage persists a new message and is the single place identifiers
// and creation timestamps are assigned. The key is formatted as
// "msg:{conversation_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order of keys equals creation order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
func (m MessageRepository) AddMessage(conversationID, senderID, text string, now time.Time) (domain.Message, error) {
	message := domain.Message{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		CreatedAt:      now.UTC(),
	}
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.ConversationID,
		message.CreatedAt.UnixNano(),
		message.MessageID,
	)
	bytes, err := json.Marshal(message)
	if err != nil {
		return domain.Message{}, err
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// GetMessages retrieves a conversation's messages in ascending creation
// order using a prefix scan. Thanks to the padded timestamp in the key,
// messages come out of the iterator already sorted by time. A non-nil
// since keeps only messages created strictly after it; timestamps are
// compared as parsed times, never as strings.
func (m MessageRepository) GetMessages(conversationID string, since *time.Time) ([]domain.Message, error) {
	var raw [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", conversationID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	for _, b := range raw {
		var message domain.Message
		if err = json.Unmarshal(b, &message); err != nil {
			return nil, err
		}
		if since != nil && !message.CreatedAt.After(*since) {
			continue
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// StartConversation creates a conversation between two users. The
// participant pair and interest are fixed at creation.
func (m MessageRepository) StartConversation(firstUserID, secondUserID string, interest domain.Interest) (domain.Conversation, error) {
	conversation := domain.Conversation{
		ConversationID: uuid.NewString(),
		FirstUserID:    firstUserID,
		SecondUserID:   secondUserID,
		Interest:       interest,
	}
	bytes, err := json.Marshal(conversation)
	if err != nil {
		return domain.Conversation{}, err
	}
	key := fmt.Sprintf("conv:%s", conversation.ConversationID)
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

// GetConversations returns every conversation the user participates in.
func (m MessageRepository) GetConversations(userID string) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte("conv:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var conversation domain.Conversation
				if err := json.Unmarshal(value, &conversation); err != nil {
					return err
				}
				if conversation.HasParticipant(userID) {
					conversations = append(conversations, conversation)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return conversations, err
}
