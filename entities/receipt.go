package entities

type Receipt struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BlobURL string `gorm:"not null" json:"blob_url"`
	// Free-form receipt payload (store, date, total, line items).
	Content  string `gorm:"type:jsonb" json:"content"`
	AuthorID uint   `gorm:"not null" json:"authorId"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
	Timestamp
}
