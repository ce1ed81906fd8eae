package router

import (
	"bytes"
	"io"
	"log"
	"time"

	"eventa/internal/bookmark"
	"eventa/internal/chat"
	"eventa/internal/config"
	"eventa/internal/event"
	"eventa/internal/friend"
	"eventa/internal/profile"
	"eventa/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupRouter 配置所有路由
func SetupRouter() *gin.Engine {
	r := gin.Default()

	// CORS 配置
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.GlobalConfig.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// API请求日志中间件
	r.Use(func(c *gin.Context) {
		// 获取请求ID，方便跟踪
		requestID := uuid.New().String()
		c.Set("requestID", requestID)

		// 记录请求体
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// 设置回请求体，因为读取后需要重置
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		// 请求开始时间
		startTime := time.Now()

		// 处理请求
		c.Next()

		// 请求结束后记录
		latency := time.Since(startTime)
		log.Printf("[%s] 请求: %s %s, 状态: %d, 延迟: %s",
			requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), latency)

		if len(requestBody) > 0 {
			log.Printf("[%s] 请求体: %s", requestID, string(requestBody))
		}
	})

	// API 路由
	api := r.Group("/api")
	{
		// ----- 用户相关 -----
		api.GET("/users", user.ListUsers)
		api.POST("/users", user.CreateUser)
		api.GET("/users/:id", user.GetUser)

		// ----- 活动相关 -----
		events := api.Group("/events")
		{
			// 静态路径注册在参数路径之前
			events.GET("/trending", event.TrendingEvents)
			events.GET("/categories", event.ListCategories)

			events.GET("", event.ListEvents)
			events.POST("", event.CreateEvent)
			events.GET("/:id", event.GetEvent)
			events.PUT("/:id", event.UpdateEvent)
			events.DELETE("/:id", event.DeleteEvent)

			events.POST("/:id/rsvp", event.RSVPEvent)
			events.GET("/:id/rsvps", event.ListEventRSVPs)

			events.GET("/:id/helpers", event.ListHelperRequests)
			events.POST("/:id/helpers", event.CreateHelperRequest)
		}

		// ----- 帮手招募与申请 -----
		api.POST("/helpers/:id/apply", event.ApplyHelper)
		api.GET("/helpers/:id/applications", event.ListApplications)
		api.PUT("/applications/:id", event.RespondApplication)

		// ----- 好友相关 -----
		api.POST("/friends/request", friend.SendRequest)
		api.POST("/friends/respond", friend.RespondRequest)
		api.GET("/friends/requests/:user_id", friend.ListPendingRequests)
		api.GET("/friends/:user_id", friend.ListFriends)

		// ----- 消息相关 -----
		// 列表和已读共用 :id 段，gin要求同一位置的参数名一致
		api.POST("/messages", chat.SendMessage)
		api.GET("/messages/:id", chat.ListMessages)
		api.PUT("/messages/:id/read", chat.MarkMessageRead)

		// ----- 收藏相关 -----
		api.POST("/bookmarks", bookmark.AddBookmark)
		api.GET("/bookmarks/:id", bookmark.ListBookmarks)
		api.DELETE("/bookmarks/:id", bookmark.RemoveBookmark)

		// ----- 用户资料 -----
		api.GET("/profile/:user_id", profile.GetProfile)
		api.PUT("/profile/:user_id", profile.UpdateProfile)

		// ----- 活动邀请 -----
		api.POST("/invitations/send", chat.SendInvitation)
	}

	return r
}
