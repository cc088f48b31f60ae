package services

import (
	"chatravel/domain"
	"chatravel/domain/event"
	chaterrors "chatravel/errors"
	"chatravel/repositories"
	"chatravel/runtime"
	"log/slog"
	"strings"
)

type IUserService interface {
	Register(userID, name string, interestValues []string) (domain.User, error)
	UpdateInterests(userID, name string, interestValues []string) (domain.User, error)
	GetUsers() ([]domain.User, error)
	GetUsersByInterest(interestValue string) ([]domain.User, error)
	GetUserInterests(userID string) ([]domain.Interest, error)
	UserExists(userID string) (bool, error)
}

// UserService registers users and announces them on the interest-match
// side bus so SSE clients with overlapping interests get notified.
type UserService struct {
	log      *slog.Logger
	users    repositories.IUserRepository
	matchBus *runtime.Bus[event.DiscoverableUser]
}

func NewUserService(log *slog.Logger, users repositories.IUserRepository,
	matchBus *runtime.Bus[event.DiscoverableUser]) *UserService {
	return &UserService{log: log, users: users, matchBus: matchBus}
}

func (s *UserService) Register(userID, name string, interestValues []string) (domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return domain.User{}, chaterrors.ErrBlankName
	}
	user := domain.User{
		UserID:    userID,
		Name:      name,
		Interests: domain.ParseInterests(interestValues),
	}
	if err := s.users.SaveUser(user); err != nil {
		return domain.User{}, err
	}
	s.announce(user)
	return user, nil
}

// UpdateInterests replaces the user's interest set and re-announces the
// user to the match bus. The name on record is kept.
func (s *UserService) UpdateInterests(userID, name string, interestValues []string) (domain.User, error) {
	user, err := s.users.GetUser(userID)
	if err == chaterrors.ErrUserNotFound {
		return s.Register(userID, name, interestValues)
	}
	if err != nil {
		return domain.User{}, err
	}
	user.Interests = domain.ParseInterests(interestValues)
	if err := s.users.SaveUser(user); err != nil {
		return domain.User{}, err
	}
	s.announce(user)
	return user, nil
}

func (s *UserService) announce(user domain.User) {
	s.matchBus.Publish(event.DiscoverableUser{
		UserID:    user.UserID,
		Name:      user.Name,
		Interests: user.Interests,
	})
}

func (s *UserService) GetUsers() ([]domain.User, error) {
	return s.users.GetUsers()
}

func (s *UserService) GetUsersByInterest(interestValue string) ([]domain.User, error) {
	interest, ok := domain.ParseInterest(interestValue)
	if !ok {
		return nil, nil
	}
	return s.users.GetUsersByInterest(interest)
}

func (s *UserService) GetUserInterests(userID string) ([]domain.Interest, error) {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return user.Interests, nil
}

func (s *UserService) UserExists(userID string) (bool, error) {
	return s.users.UserExists(userID)
}
