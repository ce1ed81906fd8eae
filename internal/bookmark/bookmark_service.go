package bookmark

import (
	"context"
	"errors"
	"log"
	"time"

	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"gorm.io/gorm"
)

// AddBookmarkRequest 添加收藏请求
type AddBookmarkRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	EventID uint `json:"event_id" binding:"required"`
}

// BookmarkInfo 收藏列表条目，解析出完整的活动信息
type BookmarkInfo struct {
	BookmarkID   uint        `json:"bookmark_id"`
	Event        model.Event `json:"event"`
	BookmarkedAt time.Time   `json:"bookmarked_at"`
}

type BookmarkService struct {
	db *gorm.DB
}

func NewBookmarkService() *BookmarkService {
	return &BookmarkService{
		db: database.GetDB(),
	}
}

// Add 收藏活动，同一活动只能收藏一次
func (s *BookmarkService) Add(ctx context.Context, userID, eventID uint) (*model.Bookmark, error) {
	bookmark := &model.Bookmark{
		UserID:  userID,
		EventID: eventID,
	}

	if err := s.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("活动 %d 已被用户 %d 收藏", eventID, userID)
		}
		return nil, err
	}

	return bookmark, nil
}

// List 获取用户的收藏列表，活动已被删除的收藏直接跳过
func (s *BookmarkService) List(ctx context.Context, userID uint) ([]BookmarkInfo, error) {
	var bookmarks []model.Bookmark
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		return nil, err
	}

	infos := make([]BookmarkInfo, 0, len(bookmarks))
	for _, b := range bookmarks {
		var event model.Event
		if err := s.db.WithContext(ctx).First(&event, b.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("收藏 %d 引用了不存在的活动 %d，已跳过", b.ID, b.EventID)
				continue
			}
			return nil, err
		}

		infos = append(infos, BookmarkInfo{
			BookmarkID:   b.ID,
			Event:        event,
			BookmarkedAt: b.CreatedAt,
		})
	}

	return infos, nil
}

// Remove 删除一条收藏
func (s *BookmarkService) Remove(ctx context.Context, bookmarkID uint) error {
	var bookmark model.Bookmark
	if err := s.db.WithContext(ctx).First(&bookmark, bookmarkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("收藏 %d 不存在", bookmarkID)
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&bookmark).Error
}
