package friend

import (
	"time"

	"eventa/internal/model"
)

// SendRequestRequest 发送好友请求
type SendRequestRequest struct {
	RequesterID uint `json:"requester_id" binding:"required"`
	AddresseeID uint `json:"addressee_id" binding:"required"`
}

// RespondRequestRequest 处理好友请求
type RespondRequestRequest struct {
	FriendshipID uint   `json:"friendship_id" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=accepted rejected"`
}

// FriendInfo 好友列表条目，带上对方的用户信息和成为好友的时间
type FriendInfo struct {
	FriendshipID uint       `json:"friendship_id"`
	Friend       model.User `json:"friend"`
	Since        time.Time  `json:"since"`
}

// PendingRequestInfo 待处理的好友请求条目
type PendingRequestInfo struct {
	FriendshipID uint       `json:"friendship_id"`
	Requester    model.User `json:"requester"`
	CreatedAt    time.Time  `json:"created_at"`
}
