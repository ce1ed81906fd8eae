package event

import (
	"context"
	"errors"

	"eventa/internal/constants"
	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"gorm.io/gorm"
)

type HelperService struct {
	db *gorm.DB
}

func NewHelperService() *HelperService {
	return &HelperService{
		db: database.GetDB(),
	}
}

// ListHelperRequests 获取活动下的帮手招募列表
func (s *HelperService) ListHelperRequests(ctx context.Context, eventID uint) ([]model.HelperRequest, error) {
	var requests []model.HelperRequest
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// CreateHelperRequest 在活动下发布帮手招募
func (s *HelperService) CreateHelperRequest(ctx context.Context, eventID uint, req *CreateHelperRequestRequest) (*model.HelperRequest, error) {
	var event model.Event
	if err := s.db.WithContext(ctx).First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("活动 %d 不存在", eventID)
		}
		return nil, err
	}

	helpersNeeded := 1
	if req.HelpersNeeded != nil {
		if *req.HelpersNeeded < 0 {
			return nil, errs.Validationf("helpers_needed 不能为负数")
		}
		helpersNeeded = *req.HelpersNeeded
	}

	request := &model.HelperRequest{
		EventID:        eventID,
		Title:          req.Title,
		Description:    req.Description,
		HelpersNeeded:  helpersNeeded,
		IsPaid:         req.IsPaid,
		PaymentAmount:  req.PaymentAmount,
		SkillsRequired: req.SkillsRequired,
	}

	if err := s.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}

	return request, nil
}

// Apply 用户申请成为帮手，同一用户对同一招募只能申请一次
func (s *HelperService) Apply(ctx context.Context, requestID uint, req *ApplyHelperRequest) (*model.HelperApplication, error) {
	var request model.HelperRequest
	if err := s.db.WithContext(ctx).First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("帮手招募 %d 不存在", requestID)
		}
		return nil, err
	}

	application := &model.HelperApplication{
		HelperRequestID: requestID,
		UserID:          req.UserID,
		Message:         req.Message,
		Status:          constants.ApplicationStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("用户 %d 已申请过该招募", req.UserID)
		}
		return nil, err
	}

	return application, nil
}

// ListApplications 获取帮手招募下的全部申请
func (s *HelperService) ListApplications(ctx context.Context, requestID uint) ([]model.HelperApplication, error) {
	var applications []model.HelperApplication
	if err := s.db.WithContext(ctx).Where("helper_request_id = ?", requestID).Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

// RespondApplication 接受或拒绝一条帮手申请
func (s *HelperService) RespondApplication(ctx context.Context, applicationID uint, status string) (*model.HelperApplication, error) {
	if status != constants.ApplicationStatusAccepted && status != constants.ApplicationStatusRejected {
		return nil, errs.Validationf("无效的申请状态: %s", status)
	}

	var application model.HelperApplication
	if err := s.db.WithContext(ctx).First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("帮手申请 %d 不存在", applicationID)
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&application).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &application, nil
}
