package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simple-notes/backend/app/controllers"
	"simple-notes/backend/app/models"
	"simple-notes/backend/app/services"
	"simple-notes/backend/config"
	"simple-notes/backend/global"
)

func newTestServer(t *testing.T) *httptest.Server {
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
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Token{}, &models.Note{}))

	tokenSvc := services.NewTokenService(gdb, 24*time.Hour)
	authSvc := services.NewAuthService(gdb, tokenSvc)
	noteSvc := services.NewNoteService(gdb, tokenSvc)
	translateSvc := services.NewTranslateService(config.Translate{Timeout: time.Second})

	h := NewRouter(
		controllers.NewHTTPController(),
		controllers.NewAuthController(authSvc),
		controllers.NewNoteController(noteSvc),
		controllers.NewTranslateController(tokenSvc, translateSvc),
	)
	srv := httptest.NewServer(h)
	t.Cleanup(func() {
		srv.Close()
		_ = sqlDB.Close()
	})
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func signUp(t *testing.T, srv *httptest.Server, username string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sign_up", "", map[string]string{
		"username": username, "password": "s3cret", "email": username + "@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignUpAndDuplicate(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "alice")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sign_up", "", map[string]string{
		"username": "alice", "password": "x", "email": "fresh@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "USER_ALREADY_EXISTS", body["error"])
}

func TestSignUpMissingFields(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/sign_up", "", map[string]string{"username": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignInFailures(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "alice")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sign_in", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "INVALID_PASSWORD", body["error"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/sign_in", "", map[string]string{
		"username": "nobody", "password": "x",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "USER_NOT_FOUND", body["error"])
}

func TestNotesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["error"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/notes", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["error"])
}

func TestNoteLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "alice")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/notes", token, map[string]string{
		"title": "T", "content": "C",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	noteID := int(body["note_id"].(float64))
	require.NotZero(t, noteID)

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/notes/%d", srv.URL, noteID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "T", body["title"])
	assert.Equal(t, "C", body["content"])
	assert.NotEmpty(t, body["created_at"])
	assert.NotEmpty(t, body["updated_at"])

	resp, body = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/notes/%d", srv.URL, noteID), token, map[string]string{
		"title": "T2", "content": "C2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["message"])

	resp, body = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/notes/%d", srv.URL, noteID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["message"])

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/notes/%d", srv.URL, noteID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOTE_NOT_FOUND", body["error"])
}

func TestListNotesWithSearch(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "alice")

	for _, title := range []string{"Qwerty 1", "Qwerty 2", "Zxcvb 1"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/notes", token, map[string]string{
			"title": title, "content": "",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/notes?query=Qwerty", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notes []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	assert.Len(t, notes, 2)
}

func TestBearerPrefixStripping(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "alice")

	// extra whitespace after the scheme must not break resolution
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/notes", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer   "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTranslateRequiresTokenAndText(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/translate", "", map[string]string{"query": "привет"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["error"])

	token := signUp(t, srv, "alice")
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/translate", token, map[string]string{"query": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No text to translate", body["error"])
}
