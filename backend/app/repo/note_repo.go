package repo

import (
	"simple-notes/backend/app/models"

	"gorm.io/gorm"
)

type NoteRepository struct{ db *gorm.DB }

func NewNoteRepository(db *gorm.DB) *NoteRepository { return &NoteRepository{db: db} }

func (r *NoteRepository) Create(n *models.Note) error { return r.db.Create(n).Error }

// FindOwned scopes every lookup by owner; a note belonging to another
// user behaves exactly like a missing note.
func (r *NoteRepository) FindOwned(noteID, userID uint) (*models.Note, error) {
	var n models.Note
	if err := r.db.Where("id = ? AND user_id = ?", noteID, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListOwned returns the user's notes, most recently touched first. A
// non-empty query filters by case-insensitive title substring.
func (r *NoteRepository) ListOwned(userID uint, query string) ([]models.Note, error) {
	var notes []models.Note
	q := r.db.Where("user_id = ?", userID)
	if query != "" {
		q = q.Where("lower(title) LIKE lower(?)", "%"+query+"%")
	}
	err := q.Order("updated_at DESC").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(n *models.Note, title, content string) error {
	return r.db.Model(n).Updates(map[string]any{
		"title":   title,
		"content": content,
	}).Error
}

// DeleteOwned reports how many rows were removed so the service can
// distinguish a miss from a hit.
func (r *NoteRepository) DeleteOwned(noteID, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", noteID, userID).Delete(&models.Note{})
	return res.RowsAffected, res.Error
}
