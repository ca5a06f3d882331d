package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simple-notes/backend/app/models"
	"simple-notes/backend/global"
)

// newTestDB opens a per-test in-memory sqlite store with the full
// schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	global.Logger = zerolog.Nop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Token{}, &models.Note{}))
	return gdb
}

func newAuthStack(t *testing.T) (*gorm.DB, *TokenService, *AuthService) {
	t.Helper()
	gdb := newTestDB(t)
	tokens := NewTokenService(gdb, 24*time.Hour)
	auth := NewAuthService(gdb, tokens)
	return gdb, tokens, auth
}
