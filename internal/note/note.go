package note

// Note is a free-text annotation tied to a category. Category holds a
// snapshot of the category name taken at creation time; it is not kept in
// sync with later category renames.
type Note struct {
	NoteID     int64  `json:"noteId" gorm:"column:noteId;primaryKey"`
	CategoryID int64  `json:"categoryId" gorm:"column:categoryId;not null"`
	Category   string `json:"category" gorm:"column:category;not null"`
	Note       string `json:"note" gorm:"column:note;not null"`
}

func (Note) TableName() string {
	return "notes"
}
