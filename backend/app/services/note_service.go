package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"simple-notes/backend/app/domain"
	"simple-notes/backend/app/models"
	"simple-notes/backend/app/repo"
)

// NoteService is the owner-scoped note CRUD, gated by token resolution.
// Every method takes the raw bearer token, never a user id; token
// sentinels short-circuit before any note query runs.
type NoteService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewNoteService(db *gorm.DB, tokens *TokenService) *NoteService {
	return &NoteService{db: db, tokens: tokens}
}

func (s *NoteService) Create(token, title, content string) (uint, error) {
	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return 0, err
	}
	n := &models.Note{UserID: userID, Title: title, Content: content}
	if err := repo.NewNoteRepository(s.db).Create(n); err != nil {
		return 0, storeFault("note.create", err)
	}
	return n.ID, nil
}

func (s *NoteService) Get(token string, noteID uint) (*models.Note, error) {
	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return nil, err
	}
	n, err := repo.NewNoteRepository(s.db).FindOwned(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, storeFault("note.get", err)
	}
	return n, nil
}

// List returns the user's notes ordered by updated_at descending. A
// whitespace-only query means no filter.
func (s *NoteService) List(token, query string) ([]models.Note, error) {
	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return nil, err
	}
	notes, err := repo.NewNoteRepository(s.db).ListOwned(userID, strings.TrimSpace(query))
	if err != nil {
		return nil, storeFault("note.list", err)
	}
	return notes, nil
}

// Update rewrites title and content of an owned note. The ownership
// check and the write run in one transaction; updated_at refreshes as a
// side effect of the write.
func (s *NoteService) Update(token string, noteID uint, title, content string) error {
	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		notes := repo.NewNoteRepository(tx)
		n, err := notes.FindOwned(noteID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoteNotFound
			}
			return storeFault("note.update.find", err)
		}
		if err := notes.Update(n, title, content); err != nil {
			return storeFault("note.update.write", err)
		}
		return nil
	})
}

func (s *NoteService) Delete(token string, noteID uint) error {
	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return err
	}
	rows, err := repo.NewNoteRepository(s.db).DeleteOwned(noteID, userID)
	if err != nil {
		return storeFault("note.delete", err)
	}
	if rows == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
