package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"simple-notes/backend/app/domain"
	"simple-notes/backend/app/models"
	"simple-notes/backend/app/repo"
)

// AuthService creates accounts and verifies credentials. Both paths
// finish by issuing a session token in the same transaction, so a
// caller never observes a signed-up or signed-in user without one.
type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// SignUp registers a new account and returns its id and session token.
// Username and email must each be globally unique; a collision on
// either yields ErrUserAlreadyExists without telling which.
func (s *AuthService) SignUp(username, password, email string) (uint, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", storeFault("auth.signup.hash", err)
	}

	var userID uint
	var tokenValue string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := repo.NewUserRepository(tx)
		count, err := users.CountByUsernameOrEmail(username, email)
		if err != nil {
			return storeFault("auth.signup.count", err)
		}
		if count > 0 {
			return domain.ErrUserAlreadyExists
		}
		u := &models.User{Username: username, PasswordHash: string(hash), Email: email}
		if err := users.Create(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrUserAlreadyExists
			}
			return storeFault("auth.signup.create", err)
		}
		t, err := s.tokens.IssueTx(tx, u.ID)
		if err != nil {
			return storeFault("auth.signup.token", err)
		}
		userID = u.ID
		tokenValue = t.Value
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return userID, tokenValue, nil
}

// SignIn verifies credentials and replaces the user's session token.
func (s *AuthService) SignIn(username, password string) (uint, string, error) {
	var userID uint
	var tokenValue string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		u, err := repo.NewUserRepository(tx).FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return storeFault("auth.signin.find", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return domain.ErrInvalidPassword
		}
		t, err := s.tokens.IssueTx(tx, u.ID)
		if err != nil {
			return storeFault("auth.signin.token", err)
		}
		userID = u.ID
		tokenValue = t.Value
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return userID, tokenValue, nil
}
