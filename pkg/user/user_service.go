package user

import (
	"context"
	"errors"

	"github.com/YasserDalali/compaire/domain"
	"github.com/YasserDalali/compaire/entities"
	"github.com/YasserDalali/compaire/pkg/password"
	"gorm.io/gorm"
)

type (
	UserService interface {
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUser(ctx context.Context, key domain.UserKey) (domain.UserResponse, error)
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, key domain.UserKey, req domain.UpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, key domain.UserKey) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) error
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, nil
}

func (s *userService) GetUser(ctx context.Context, key domain.UserKey) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	// Email uniqueness is not pre-checked; a duplicate surfaces as the
	// database's unique constraint violation.
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Email:    req.Email,
		Password: hashed,
	}
	if req.Name != "" {
		user.Name = &req.Name
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, key domain.UserKey, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Name != "" {
		name := req.Name
		user.Name = &name
	}
	if req.Password != "" {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.Password = hashed
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, key domain.UserKey) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if err := s.userRepository.DeleteUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) error {
	user, err := s.userRepository.GetUserByKey(ctx, domain.UserKey{Email: req.Email})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	ok, err := password.Verify(req.Password, user.Password)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidPassword
	}
	return nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
	}
}
