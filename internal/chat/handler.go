package chat

import (
	"log"
	"net/http"
	"strconv"

	"eventa/internal/errs"

	"github.com/gin-gonic/gin"
)

// SendMessage 处理发送消息
func SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewMessageService()
	message, err := svc.SendMessage(c.Request.Context(), &req)
	if err != nil {
		log.Printf("发送消息失败 (%d -> %d): %v", req.SenderID, req.RecipientID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages 获取用户的消息，带 other_user_id 参数时返回两人会话
// 路径参数是用户ID（路由里与已读接口共用 :id 段名）
func ListMessages(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var otherUserID *uint
	if raw := c.Query("other_user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 other_user_id"})
			return
		}
		other := uint(parsed)
		otherUserID = &other
	}

	svc := NewMessageService()
	messages, err := svc.ListMessages(c.Request.Context(), uint(userID), otherUserID)
	if err != nil {
		log.Printf("获取消息失败 (用户 %d): %v", userID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead 标记消息已读
func MarkMessageRead(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的消息ID"})
		return
	}

	svc := NewMessageService()
	message, err := svc.MarkRead(c.Request.Context(), uint(messageID))
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

// SendInvitation 发送活动邀请
func SendInvitation(c *gin.Context) {
	var req SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewMessageService()
	message, err := svc.SendInvitation(c.Request.Context(), &req)
	if err != nil {
		log.Printf("发送活动邀请失败 (活动 %d): %v", req.EventID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "邀请发送成功",
		"invitation": message,
	})
}
