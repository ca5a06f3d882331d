package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"simple-notes/backend/app/domain"
	"simple-notes/backend/app/models"
	"simple-notes/backend/app/repo"
)

// TokenService mints and validates bearer tokens. Tokens are opaque
// random strings stored alongside an epoch-millis expiration; expiry is
// checked at resolve time, stale rows are not swept.
type TokenService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewTokenService(db *gorm.DB, ttl time.Duration) *TokenService {
	return &TokenService{db: db, ttl: ttl, now: time.Now}
}

// IssueTx mints a fresh token for userID inside the caller's
// transaction, replacing any previous token for that user.
func (s *TokenService) IssueTx(tx *gorm.DB, userID uint) (*models.Token, error) {
	t := &models.Token{
		UserID:     userID,
		Value:      uuid.NewString(),
		Expiration: s.now().Add(s.ttl).UnixMilli(),
	}
	if err := repo.NewTokenRepository(tx).Upsert(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Resolve maps a presented token value to its owning user id.
func (s *TokenService) Resolve(value string) (uint, error) {
	t, err := repo.NewTokenRepository(s.db).FindByValue(value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrInvalidToken
		}
		return 0, storeFault("token.resolve", err)
	}
	if t.Expiration <= s.now().UnixMilli() {
		return 0, domain.ErrTokenExpired
	}
	return t.UserID, nil
}
