package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/note"
	"gorm.io/gorm"
)

// NoteRepository implements note.RepositoryAPI using GORM
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) note.RepositoryAPI {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) List() ([]*note.Note, error) {
	var notes []*note.Note
	err := r.db.Order(`"noteId" DESC`).Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Create(n *note.Note) error {
	return r.db.Create(n).Error
}

// Update replaces the category label and note text. The categoryId column
// is left untouched.
func (r *NoteRepository) Update(n *note.Note) (*note.Note, error) {
	res := r.db.Model(&note.Note{}).
		Where(`"noteId" = ?`, n.NoteID).
		Updates(map[string]interface{}{
			"category": n.Category,
			"note":     n.Note,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, note.ErrNoteNotFound
	}

	var updated note.Note
	if err := r.db.Where(`"noteId" = ?`, n.NoteID).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *NoteRepository) Delete(id int64) error {
	return r.db.Where(`"noteId" = ?`, id).Delete(&note.Note{}).Error
}
