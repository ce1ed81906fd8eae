package chat

import (
	"context"
	"errors"

	"eventa/internal/constants"
	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"gorm.io/gorm"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService() *MessageService {
	return &MessageService{
		db: database.GetDB(),
	}
}

// SendMessage 发送一条消息，消息默认未读
func (s *MessageService) SendMessage(ctx context.Context, req *SendMessageRequest) (*model.Message, error) {
	messageType := req.MessageType
	if messageType == "" {
		messageType = constants.MessageTypeText
	}

	message := &model.Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
		MessageType: messageType,
		EventID:     req.EventID,
		IsRead:      false,
	}

	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}

	return message, nil
}

// ListMessages 获取用户的消息
// 指定 otherUserID 时返回两人的会话（按时间正序），
// 否则返回用户收发的全部消息（按时间倒序）
// 两种排序的不一致是沿用的产品行为：会话按时间阅读，收件箱看最新
func (s *MessageService) ListMessages(ctx context.Context, userID uint, otherUserID *uint) ([]model.Message, error) {
	var messages []model.Message

	if otherUserID != nil {
		err := s.db.WithContext(ctx).
			Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
				userID, *otherUserID, *otherUserID, userID).
			Order("created_at ASC").
			Find(&messages).Error
		if err != nil {
			return nil, err
		}
		return messages, nil
	}

	err := s.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkRead 把一条消息标记为已读
func (s *MessageService) MarkRead(ctx context.Context, messageID uint) (*model.Message, error) {
	var message model.Message
	if err := s.db.WithContext(ctx).First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("消息 %d 不存在", messageID)
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&message).Update("is_read", true).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

// SendInvitation 以消息形式发送活动邀请
// 活动必须存在，邀请内容缺省时使用固定文案
func (s *MessageService) SendInvitation(ctx context.Context, req *SendInvitationRequest) (*model.Message, error) {
	var event model.Event
	if err := s.db.WithContext(ctx).First(&event, req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("活动 %d 不存在", req.EventID)
		}
		return nil, err
	}

	content := req.Message
	if content == "" {
		content = constants.DefaultInviteContent
	}

	eventID := req.EventID
	message := &model.Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Content:     content,
		MessageType: constants.MessageTypeEventInvite,
		EventID:     &eventID,
		IsRead:      false,
	}

	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}

	return message, nil
}
