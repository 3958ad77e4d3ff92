package seed

import (
	"context"
	"errors"
	"log"

	"github.com/YasserDalali/compaire/domain"
	"github.com/YasserDalali/compaire/entities"
	"github.com/YasserDalali/compaire/pkg/comparison"
	"github.com/YasserDalali/compaire/pkg/password"
	"github.com/YasserDalali/compaire/pkg/receipt"
	"github.com/YasserDalali/compaire/pkg/user"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	demoEmail    = "test@example.com"
	demoName     = "Test User"
	demoPassword = "password123"
)

// Seed inserts the demo dataset: one user (upserted by email), two receipts
// and one completed comparison referencing both. The user insert is
// idempotent; receipts and the comparison are added again on every run.
func Seed(ctx context.Context, db *gorm.DB) error {
	userRepository := user.NewUserRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)
	comparisonRepository := comparison.NewComparisonRepository(db)

	demoUser, err := userRepository.GetUserByKey(ctx, domain.UserKey{Email: demoEmail})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The password goes through the hasher so the demo login works.
		hashed, err := password.Hash(demoPassword)
		if err != nil {
			return err
		}
		name := demoName
		demoUser = &entities.User{
			Email:    demoEmail,
			Name:     &name,
			Password: hashed,
		}
		if err := userRepository.CreateUser(ctx, demoUser); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	log.Printf("Created user: %s (id=%d)", demoUser.Email, demoUser.ID)

	firstReceipt := &entities.Receipt{
		BlobURL: "https://storage.example.com/receipts/receipt1.pdf",
		Content: `{
			"store": "Grocery Store",
			"date": "2025-07-20",
			"total": 42.99,
			"items": [
				{"name": "Milk", "price": 3.99},
				{"name": "Bread", "price": 2.49},
				{"name": "Eggs", "price": 5.99}
			]
		}`,
		AuthorID: demoUser.ID,
	}
	if err := receiptRepository.CreateReceipt(ctx, firstReceipt); err != nil {
		return err
	}
	log.Printf("Created receipt: id=%d", firstReceipt.ID)

	secondReceipt := &entities.Receipt{
		BlobURL: "https://storage.example.com/receipts/receipt2.pdf",
		Content: `{
			"store": "Grocery Store",
			"date": "2025-07-21",
			"total": 38.50,
			"items": [
				{"name": "Milk", "price": 3.99},
				{"name": "Bread", "price": 2.49},
				{"name": "Cheese", "price": 6.99}
			]
		}`,
		AuthorID: demoUser.ID,
	}
	if err := receiptRepository.CreateReceipt(ctx, secondReceipt); err != nil {
		return err
	}
	log.Printf("Created second receipt: id=%d", secondReceipt.ID)

	demoComparison := &entities.Comparison{
		UserID:     demoUser.ID,
		ReceiptIDs: pq.Int64Array{int64(firstReceipt.ID), int64(secondReceipt.ID)},
		Status:     entities.ComparisonStatusCompleted,
		ParsedData: `{
			"commonItems": ["Milk", "Bread"],
			"priceDifferences": {
				"total": 4.49,
				"items": {"Milk": 0, "Bread": 0}
			},
			"uniqueItems": {
				"receipt1": ["Eggs"],
				"receipt2": ["Cheese"]
			}
		}`,
	}
	if err := comparisonRepository.CreateComparison(ctx, demoComparison); err != nil {
		return err
	}
	log.Printf("Created comparison: id=%d", demoComparison.ID)

	log.Println("Database has been seeded successfully!")
	return nil
}
