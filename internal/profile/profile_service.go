package profile

import (
	"context"
	"errors"
	"time"

	"eventa/internal/constants"
	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService() *ProfileService {
	return &ProfileService{
		db: database.GetDB(),
	}
}

// GetOrCreate 获取用户资料，不存在时懒创建
// 懒创建要求用户本身存在，display_name 默认取用户名
func (s *ProfileService) GetOrCreate(ctx context.Context, userID uint) (*ProfileResponse, error) {
	var profile model.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return newProfileResponse(&profile), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("用户 %d 不存在", userID)
		}
		return nil, err
	}

	profile = model.UserProfile{
		UserID:       userID,
		DisplayName:  user.Username,
		PrivacyLevel: constants.PrivacyPublic,
	}

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		// 并发的首次访问可能已经建好，直接读回来
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
				return nil, err
			}
			return newProfileResponse(&profile), nil
		}
		return nil, err
	}

	return newProfileResponse(&profile), nil
}

// Update 部分更新用户资料，资料不存在时先创建一条空资料
func (s *ProfileService) Update(ctx context.Context, userID uint, req *UpdateProfileRequest) (*ProfileResponse, error) {
	var profile model.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = model.UserProfile{UserID: userID, PrivacyLevel: constants.PrivacyPublic}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Interests != nil {
		updates["interests"] = req.Interests.Join()
	}
	if req.ProfilePictureURL != nil {
		updates["profile_picture_url"] = *req.ProfilePictureURL
	}
	if req.PrivacyLevel != nil {
		updates["privacy_level"] = *req.PrivacyLevel
	}
	if req.NotificationPreferences != nil {
		updates["notification_preferences"] = *req.NotificationPreferences
	}
	updates["updated_at"] = time.Now()

	if err := s.db.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}

	return newProfileResponse(&profile), nil
}
