package repo

import (
	"simple-notes/backend/app/models"

	"gorm.io/gorm"
)

type TokenRepository struct{ db *gorm.DB }

func NewTokenRepository(db *gorm.DB) *TokenRepository { return &TokenRepository{db: db} }

// Upsert replaces any existing token row for t.UserID. UserID is the
// primary key, so signing in elsewhere invalidates the prior session.
func (r *TokenRepository) Upsert(t *models.Token) error {
	var existing models.Token
	if err := r.db.Where("user_id = ?", t.UserID).First(&existing).Error; err == nil {
		return r.db.Model(&existing).Updates(map[string]any{
			"value":      t.Value,
			"expiration": t.Expiration,
		}).Error
	}
	return r.db.Create(t).Error
}

func (r *TokenRepository) FindByValue(value string) (*models.Token, error) {
	var t models.Token
	if err := r.db.Where("value = ?", value).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
