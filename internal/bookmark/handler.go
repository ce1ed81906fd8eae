package bookmark

import (
	"log"
	"net/http"
	"strconv"

	"eventa/internal/errs"

	"github.com/gin-gonic/gin"
)

// AddBookmark 收藏活动
func AddBookmark(c *gin.Context) {
	var req AddBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewBookmarkService()
	bookmark, err := svc.Add(c.Request.Context(), req.UserID, req.EventID)
	if err != nil {
		log.Printf("添加收藏失败 (用户 %d, 活动 %d): %v", req.UserID, req.EventID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

// ListBookmarks 获取用户的收藏列表
// 路径参数是用户ID（路由里与删除接口共用 :id 段名）
func ListBookmarks(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	svc := NewBookmarkService()
	bookmarks, err := svc.List(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// RemoveBookmark 删除收藏
func RemoveBookmark(c *gin.Context) {
	bookmarkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的收藏ID"})
		return
	}

	svc := NewBookmarkService()
	if err := svc.Remove(c.Request.Context(), uint(bookmarkID)); err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
