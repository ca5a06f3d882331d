package models

// Token is a bearer session token. UserID is the primary key, so a user
// can hold at most one row: re-issuing replaces the previous session.
type Token struct {
	UserID     uint   `gorm:"primaryKey"`
	Value      string `gorm:"uniqueIndex;size:191;not null"`
	Expiration int64  `gorm:"not null"` // epoch millis
}
