package profile

import (
	"log"
	"net/http"
	"strconv"

	"eventa/internal/errs"

	"github.com/gin-gonic/gin"
)

// GetProfile 获取用户资料，首次访问时自动创建
func GetProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	svc := NewProfileService()
	profile, err := svc.GetOrCreate(c.Request.Context(), uint(userID))
	if err != nil {
		log.Printf("获取用户资料失败 (用户 %d): %v", userID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile 更新用户资料
func UpdateProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewProfileService()
	profile, err := svc.Update(c.Request.Context(), uint(userID), &req)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
