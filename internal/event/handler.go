package event

import (
	"log"
	"net/http"
	"strconv"

	"eventa/internal/errs"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径参数里的数字ID
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的ID: " + c.Param(name)})
		return 0, false
	}
	return uint(id), true
}

// ListEvents 获取活动列表，支持分类、搜索、地点、帮手、价格筛选
func ListEvents(c *gin.Context) {
	var filter EventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewEventService()
	events, err := svc.ListEvents(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("获取活动列表失败: %v", err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent 创建活动
func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewEventService()
	event, err := svc.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		log.Printf("创建活动失败: %v", err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent 获取单个活动
func GetEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc := NewEventService()
	event, err := svc.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent 部分更新活动
func UpdateEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewEventService()
	event, err := svc.UpdateEvent(c.Request.Context(), eventID, &req)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent 删除活动
func DeleteEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc := NewEventService()
	if err := svc.DeleteEvent(c.Request.Context(), eventID); err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RSVPEvent 提交或更新参与意向
func RSVPEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewEventService()
	if err := svc.UpsertRSVP(c.Request.Context(), eventID, req.UserID, req.Status); err != nil {
		log.Printf("RSVP失败 (活动 %d, 用户 %d): %v", eventID, req.UserID, err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "RSVP更新成功"})
}

// ListEventRSVPs 获取活动的全部RSVP
func ListEventRSVPs(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc := NewEventService()
	rsvps, err := svc.ListRSVPs(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rsvps)
}

// TrendingEvents 获取热门活动
func TrendingEvents(c *gin.Context) {
	svc := NewEventService()
	events, err := svc.TrendingEvents(c.Request.Context())
	if err != nil {
		log.Printf("获取热门活动失败: %v", err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ListCategories 获取全部活动分类
func ListCategories(c *gin.Context) {
	svc := NewEventService()
	categories, err := svc.ListCategories(c.Request.Context())
	if err != nil {
		log.Printf("获取活动分类失败: %v", err)
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListHelperRequests 获取活动下的帮手招募
func ListHelperRequests(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc := NewHelperService()
	requests, err := svc.ListHelperRequests(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// CreateHelperRequest 发布帮手招募
func CreateHelperRequest(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CreateHelperRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewHelperService()
	request, err := svc.CreateHelperRequest(c.Request.Context(), eventID, &req)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ApplyHelper 申请成为帮手
func ApplyHelper(c *gin.Context) {
	requestID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ApplyHelperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewHelperService()
	application, err := svc.Apply(c.Request.Context(), requestID, &req)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListApplications 获取帮手招募下的申请列表
func ListApplications(c *gin.Context) {
	requestID, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc := NewHelperService()
	applications, err := svc.ListApplications(c.Request.Context(), requestID)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// RespondApplication 接受或拒绝帮手申请
func RespondApplication(c *gin.Context) {
	applicationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RespondApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := NewHelperService()
	application, err := svc.RespondApplication(c.Request.Context(), applicationID, req.Status)
	if err != nil {
		c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, application)
}
