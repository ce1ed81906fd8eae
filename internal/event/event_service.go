package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventa/internal/constants"
	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"
	"eventa/internal/redisclient"

	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService() *EventService {
	return &EventService{
		db: database.GetDB(),
	}
}

// ListEvents 按筛选条件获取公开活动列表，按创建时间倒序
func (s *EventService) ListEvents(ctx context.Context, filter *EventFilter) ([]model.Event, error) {
	query := s.db.WithContext(ctx).
		Where("visibility = ?", constants.VisibilityPublic)

	// 分类筛选，"all" 表示不过滤
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}

	// 全文搜索：标题、描述、地点任一命中即可
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			term, term, term,
		)
	}

	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	if filter.HelpersNeeded == "true" {
		query = query.Where("helpers_needed = ?", true)
	}

	// 价格筛选：free 为 price 等于 "Free"（忽略大小写），paid 取反
	if filter.PriceFilter == constants.PriceFilterFree {
		query = query.Where("LOWER(price) = ?", "free")
	} else if filter.PriceFilter == constants.PriceFilterPaid {
		query = query.Where("LOWER(price) <> ?", "free")
	}

	var events []model.Event
	if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// CreateEvent 创建活动
func (s *EventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		OrganizerID:   req.OrganizerID,
		OrganizerName: req.OrganizerName,
		HelpersNeeded: req.HelpersNeeded,
		Visibility:    req.Visibility,
	}

	if event.Price == "" {
		event.Price = constants.PriceFree
	}
	if event.Visibility == "" {
		event.Visibility = constants.VisibilityPublic
	}

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}

	s.invalidateListCaches(ctx)
	return event, nil
}

// GetEvent 获取单个活动
func (s *EventService) GetEvent(ctx context.Context, eventID uint) (*model.Event, error) {
	var event model.Event
	if err := s.db.WithContext(ctx).First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("活动 %d 不存在", eventID)
		}
		return nil, err
	}

	return &event, nil
}

// UpdateEvent 部分更新活动，只有请求里出现的字段会被修改
func (s *EventService) UpdateEvent(ctx context.Context, eventID uint, req *UpdateEventRequest) (*model.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.HelpersNeeded != nil {
		updates["helpers_needed"] = *req.HelpersNeeded
	}
	if req.Visibility != nil {
		updates["visibility"] = *req.Visibility
	}
	updates["updated_at"] = time.Now()

	if err := s.db.WithContext(ctx).Model(event).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.invalidateListCaches(ctx)
	return event, nil
}

// DeleteEvent 删除活动，同时级联删除它的RSVP、帮手招募和帮手申请
func (s *EventService) DeleteEvent(ctx context.Context, eventID uint) error {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// 先删帮手申请（通过帮手招募间接挂在活动下）
	if err := tx.Where(
		"helper_request_id IN (?)",
		tx.Model(&model.HelperRequest{}).Select("id").Where("event_id = ?", eventID),
	).Delete(&model.HelperApplication{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("event_id = ?", eventID).Delete(&model.HelperRequest{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("event_id = ?", eventID).Delete(&model.RSVP{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&model.Event{}, eventID).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidateListCaches(ctx)
	return nil
}

// UpsertRSVP 写入或覆盖用户对活动的参与意向
// RSVP写入和 attendees_count 重算在同一个事务里完成，
// 保证读者不会看到计数落后于RSVP的中间状态
func (s *EventService) UpsertRSVP(ctx context.Context, eventID, userID uint, status string) error {
	if status == "" {
		status = constants.RSVPStatusInterested
	}

	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// 直接尝试插入，撞上唯一索引说明已有记录，原地覆盖状态
	// 不做先查后插，并发下查不到不代表插得进去
	rsvp := model.RSVP{
		UserID:  userID,
		EventID: eventID,
		Status:  status,
	}
	if err := tx.Create(&rsvp).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			tx.Rollback()
			return err
		}
		if err := tx.Model(&model.RSVP{}).
			Where("user_id = ? AND event_id = ?", userID, eventID).
			Update("status", status).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := recountAttendees(tx, eventID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidateListCaches(ctx)
	return nil
}

// recountAttendees 重算活动的参加人数并写回
// 幂等，任何RSVP变更路径都必须在同一事务内调用它
func recountAttendees(tx *gorm.DB, eventID uint) error {
	var goingCount int64
	if err := tx.Model(&model.RSVP{}).
		Where("event_id = ? AND status = ?", eventID, constants.RSVPStatusGoing).
		Count(&goingCount).Error; err != nil {
		return err
	}

	return tx.Model(&model.Event{}).
		Where("id = ?", eventID).
		Update("attendees_count", goingCount).Error
}

// ListRSVPs 获取活动的全部RSVP记录，不按状态过滤
func (s *EventService) ListRSVPs(ctx context.Context, eventID uint) ([]model.RSVP, error) {
	var rsvps []model.RSVP
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&rsvps).Error; err != nil {
		return nil, err
	}

	return rsvps, nil
}

// TrendingEvents 按参加人数取前10个公开活动，结果走Redis缓存
func (s *EventService) TrendingEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if redisclient.GetJSON(ctx, constants.RedisKeyTrendingEvents, &events) {
		return events, nil
	}

	if err := s.db.WithContext(ctx).
		Where("visibility = ?", constants.VisibilityPublic).
		Order("attendees_count DESC").
		Limit(constants.TrendingLimit).
		Find(&events).Error; err != nil {
		return nil, err
	}

	redisclient.CacheJSON(ctx, constants.RedisKeyTrendingEvents, events,
		constants.CacheExpirationSeconds*time.Second)
	return events, nil
}

// ListCategories 获取全部活动分类（去重、排除空值），结果走Redis缓存
func (s *EventService) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if redisclient.GetJSON(ctx, constants.RedisKeyCategories, &categories) {
		return categories, nil
	}

	if err := s.db.WithContext(ctx).Model(&model.Event{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}

	redisclient.CacheJSON(ctx, constants.RedisKeyCategories, categories,
		constants.CacheExpirationSeconds*time.Second)
	return categories, nil
}

// invalidateListCaches 活动或RSVP发生写入后清掉列表类缓存
func (s *EventService) invalidateListCaches(ctx context.Context) {
	redisclient.Invalidate(ctx, constants.RedisKeyTrendingEvents, constants.RedisKeyCategories)
}
