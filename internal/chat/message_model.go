package chat

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	SenderID    uint   `json:"sender_id" binding:"required"`
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
	MessageType string `json:"message_type" binding:"omitempty,oneof=text image event_invite"`
	EventID     *uint  `json:"event_id"`
}

// SendInvitationRequest 发送活动邀请请求
type SendInvitationRequest struct {
	SenderID    uint   `json:"sender_id" binding:"required"`
	RecipientID uint   `json:"recipient_id" binding:"required"`
	EventID     uint   `json:"event_id" binding:"required"`
	Message     string `json:"message"`
}
