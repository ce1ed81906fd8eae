package friend

import (
	"log"
	"net/http"
	"strconv"

	"eventa/internal/errs"

	"github.com/gin-gonic/gin"
)

// SendRequest 处理发送好友请求
func SendRequest(c *gin.Context) {
	var req SendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewFriendService()
	friendship, err := svc.SendRequest(c.Request.Context(), req.RequesterID, req.AddresseeID)
	if err != nil {
		log.Printf("发送好友请求失败 (%d -> %d): %v", req.RequesterID, req.AddresseeID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, friendship)
}

// RespondRequest 处理接受/拒绝好友请求
func RespondRequest(c *gin.Context) {
	var req RespondRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewFriendService()
	friendship, err := svc.RespondRequest(c.Request.Context(), req.FriendshipID, req.Status)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, friendship)
}

// ListFriends 获取好友列表
func ListFriends(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	svc := NewFriendService()
	friends, err := svc.ListFriends(c.Request.Context(), uint(userID))
	if err != nil {
		log.Printf("获取好友列表失败 (用户 %d): %v", userID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, friends)
}

// ListPendingRequests 获取待处理的好友请求
func ListPendingRequests(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	svc := NewFriendService()
	requests, err := svc.ListPendingRequests(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}
