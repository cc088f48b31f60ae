//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chatravel/domain"
	chaterrors "chatravel/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	SaveUser(user domain.User) error
	GetUser(userID string) (domain.User, error)
	GetUsers() ([]domain.User, error)
	GetUsersByInterest(interest domain.Interest) ([]domain.User, error)
	UserExists(userID string) (bool, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) UserRepository {
	return UserRepository{db: db, log: log}
}

func userKey(userID string) []byte {
	return []byte(fmt.Sprintf("user:%s", userID))
}

// SaveUser writes the user document, overwriting any previous version.
// The key carries the user identifier, so uniqueness is structural.
func (u UserRepository) SaveUser(user domain.User) error {
	bytes, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.UserID), bytes)
	})
}

func (u UserRepository) GetUser(userID string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(userID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &user)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, chaterrors.ErrUserNotFound
	}
	return user, err
}

func (u UserRepository) UserExists(userID string) (bool, error) {
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(userID))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	return err == nil, err
}

func (u UserRepository) GetUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte("user:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var user domain.User
				if err := json.Unmarshal(value, &user); err != nil {
					return err
				}
				users = append(users, user)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return users, err
}

// GetUsersByInterest filters the user collection on one interest tag.
func (u UserRepository) GetUsersByInterest(interest domain.Interest) ([]domain.User, error) {
	users, err := u.GetUsers()
	if err != nil {
		return nil, err
	}
	var matching []domain.User
	for _, user := range users {
		if user.HasAnyInterest([]domain.Interest{interest}) {
			matching = append(matching, user)
		}
	}
	return matching, nil
}
