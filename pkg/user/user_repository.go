package user

import (
	"context"

	"github.com/YasserDalali/compaire/domain"
	"github.com/YasserDalali/compaire/entities"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetUsers(ctx context.Context) ([]*entities.User, error)
		GetUserByKey(ctx context.Context, key domain.UserKey) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, user *entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUserByKey(ctx context.Context, key domain.UserKey) (*entities.User, error) {
	var user entities.User
	if err := scopeByKey(r.db.WithContext(ctx), key).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Delete(user).Error
}

func scopeByKey(q *gorm.DB, key domain.UserKey) *gorm.DB {
	if key.ByID() {
		return q.Where("id = ?", key.ID)
	}
	return q.Where("email = ?", key.Email)
}
