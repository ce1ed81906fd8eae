package friend

import (
	"context"
	"errors"
	"log"

	"eventa/internal/constants"
	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"gorm.io/gorm"
)

type FriendService struct {
	db *gorm.DB
}

func NewFriendService() *FriendService {
	return &FriendService{
		db: database.GetDB(),
	}
}

// SendRequest 发送好友请求
// 唯一索引只约束一个方向，所以写入前必须把两个方向都查一遍
func (s *FriendService) SendRequest(ctx context.Context, requesterID, addresseeID uint) (*model.Friendship, error) {
	if requesterID == addresseeID {
		return nil, errs.Validationf("不能添加自己为好友")
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			requesterID, addresseeID, addresseeID, requesterID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.Conflictf("好友关系已存在")
	}

	friendship := &model.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      constants.FriendshipStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(friendship).Error; err != nil {
		// 并发下预检查可能漏掉同方向的重复，唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("好友关系已存在")
		}
		return nil, err
	}

	return friendship, nil
}

// RespondRequest 接受或拒绝好友请求
func (s *FriendService) RespondRequest(ctx context.Context, friendshipID uint, status string) (*model.Friendship, error) {
	if status != constants.FriendshipStatusAccepted && status != constants.FriendshipStatusRejected {
		return nil, errs.Validationf("无效的状态: %s", status)
	}

	var friendship model.Friendship
	if err := s.db.WithContext(ctx).First(&friendship, friendshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("好友请求 %d 不存在", friendshipID)
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&friendship).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &friendship, nil
}

// ListFriends 获取用户的好友列表
// 不论用户是请求方还是接收方都算，引用已删除用户的记录直接跳过
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]FriendInfo, error) {
	var friendships []model.Friendship
	err := s.db.WithContext(ctx).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, constants.FriendshipStatusAccepted).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	friends := make([]FriendInfo, 0, len(friendships))
	for _, f := range friendships {
		friendID := f.AddresseeID
		if friendID == userID {
			friendID = f.RequesterID
		}

		var friendUser model.User
		if err := s.db.WithContext(ctx).First(&friendUser, friendID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("好友关系 %d 引用了不存在的用户 %d，已跳过", f.ID, friendID)
				continue
			}
			return nil, err
		}

		friends = append(friends, FriendInfo{
			FriendshipID: f.ID,
			Friend:       friendUser,
			Since:        f.UpdatedAt, // 接受请求时刷新，即成为好友的时间
		})
	}

	return friends, nil
}

// ListPendingRequests 获取发给用户的待处理好友请求
func (s *FriendService) ListPendingRequests(ctx context.Context, userID uint) ([]PendingRequestInfo, error) {
	var friendships []model.Friendship
	err := s.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", userID, constants.FriendshipStatusPending).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	requests := make([]PendingRequestInfo, 0, len(friendships))
	for _, f := range friendships {
		var requester model.User
		if err := s.db.WithContext(ctx).First(&requester, f.RequesterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		requests = append(requests, PendingRequestInfo{
			FriendshipID: f.ID,
			Requester:    requester,
			CreatedAt:    f.CreatedAt,
		})
	}

	return requests, nil
}
