package entities

type User struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email string  `gorm:"uniqueIndex;not null" json:"email"`
	Name  *string `json:"name"`
	// Password always holds a bcrypt digest once past the create/update boundary.
	Password string `gorm:"not null" json:"password"`

	Receipts    []*Receipt    `gorm:"foreignKey:AuthorID" json:"-"`
	Comparisons []*Comparison `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
