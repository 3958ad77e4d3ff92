package entities

import (
	"github.com/lib/pq"
)

const (
	ComparisonStatusPending   = "PENDING"
	ComparisonStatusCompleted = "COMPLETED"
	ComparisonStatusFailed    = "FAILED"
)

type Comparison struct {
	ID         uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint          `gorm:"not null" json:"userId"`
	ReceiptIDs pq.Int64Array `gorm:"type:integer[]" json:"receiptId"`
	Status     string        `gorm:"not null" json:"status"` // "PENDING", "COMPLETED", "FAILED"
	ParsedData string        `gorm:"type:jsonb" json:"parsedData"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
