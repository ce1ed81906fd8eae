package user

import (
	"context"
	"errors"

	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService() *UserService {
	return &UserService{
		db: database.GetDB(),
	}
}

// CreateUser 创建新用户，用户名和邮箱必须唯一
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// 唯一索引冲突由 TranslateError 统一翻译
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("用户名或邮箱已存在")
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID 通过ID获取用户
func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("用户 %d 不存在", userID)
		}
		return nil, err
	}

	return &user, nil
}

// ListUsers 获取全部用户
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
