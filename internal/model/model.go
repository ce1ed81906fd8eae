package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型（身份认证由外部系统负责，这里只保留基本字段）
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event 活动模型
type Event struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Date           string    `gorm:"type:varchar(50);not null" json:"date"`
	Time           string    `gorm:"type:varchar(50);not null" json:"time"`
	Location       string    `gorm:"type:varchar(200);not null" json:"location"`
	Price          string    `gorm:"type:varchar(20);not null;default:'Free'" json:"price"`
	ImageURL       string    `gorm:"type:varchar(500)" json:"image_url"`
	Category       string    `gorm:"type:varchar(50);not null" json:"category"`
	OrganizerID    uint      `gorm:"not null;index" json:"organizer_id"`
	OrganizerName  string    `gorm:"type:varchar(100);not null" json:"organizer_name"`
	AttendeesCount int       `gorm:"default:0" json:"attendees_count"`
	HelpersNeeded  bool      `gorm:"default:false" json:"helpers_needed"`
	Visibility     string    `gorm:"type:varchar(20);default:'public'" json:"visibility"` // public, private, invite-only
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RSVP 用户对活动的参与意向记录
// (user_id, event_id) 唯一，同一用户对同一活动只能有一条记录
type RSVP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uniq_user_event_rsvp" json:"user_id"`
	EventID   uint      `gorm:"not null;uniqueIndex:uniq_user_event_rsvp;index" json:"event_id"`
	Status    string    `gorm:"type:varchar(20);default:'interested'" json:"status"` // interested, going, not_going
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (RSVP) TableName() string {
	return "rsvps"
}

// HelperRequest 活动下发布的帮手招募
type HelperRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EventID        uint      `gorm:"not null;index" json:"event_id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	HelpersNeeded  int       `gorm:"default:1" json:"helpers_needed"`
	IsPaid         bool      `gorm:"default:false" json:"is_paid"`
	PaymentAmount  string    `gorm:"type:varchar(20)" json:"payment_amount"`
	SkillsRequired string    `gorm:"type:varchar(500)" json:"skills_required"`
	CreatedAt      time.Time `json:"created_at"`
}

// HelperApplication 用户对帮手招募的申请
// (helper_request_id, user_id) 唯一
type HelperApplication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	HelperRequestID uint      `gorm:"not null;uniqueIndex:uniq_request_user_application" json:"helper_request_id"`
	UserID          uint      `gorm:"not null;uniqueIndex:uniq_request_user_application" json:"user_id"`
	Message         string    `gorm:"type:text" json:"message"`
	Status          string    `gorm:"type:varchar(20);default:'pending'" json:"status"` // pending, accepted, rejected
	CreatedAt       time.Time `json:"created_at"`
}

// Friendship 好友关系
// 唯一索引只覆盖 (requester_id, addressee_id) 这一个方向，
// 反方向的重复必须在写入前显式检查
type Friendship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;uniqueIndex:uniq_friendship;index" json:"requester_id"`
	AddresseeID uint      `gorm:"not null;uniqueIndex:uniq_friendship;index" json:"addressee_id"`
	Status      string    `gorm:"type:varchar(20);default:'pending'" json:"status"` // pending, accepted, blocked
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Friendship) TableName() string {
	return "friendships"
}

// Message 私信消息，活动邀请也以消息形式投递
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderID    uint      `gorm:"not null;index" json:"sender_id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	MessageType string    `gorm:"type:varchar(20);default:'text'" json:"message_type"` // text, image, event_invite
	EventID     *uint     `json:"event_id"`                                            // 仅活动邀请消息携带
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bookmark 活动收藏
// (user_id, event_id) 唯一
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uniq_user_event_bookmark" json:"user_id"`
	EventID   uint      `gorm:"not null;uniqueIndex:uniq_user_event_bookmark" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile 用户资料，首次访问时懒创建
type UserProfile struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	UserID                  uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	DisplayName             string    `gorm:"type:varchar(100)" json:"display_name"`
	Bio                     string    `gorm:"type:text" json:"bio"`
	Location                string    `gorm:"type:varchar(200)" json:"location"`
	Interests               string    `gorm:"type:varchar(500)" json:"-"` // 逗号分隔的分类标签，对外序列化为数组
	ProfilePictureURL       string    `gorm:"type:varchar(500)" json:"profile_picture_url"`
	PrivacyLevel            string    `gorm:"type:varchar(20);default:'public'" json:"privacy_level"` // public, friends_only, private
	NotificationPreferences string    `gorm:"type:varchar(500)" json:"notification_preferences"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// SetupDatabase 初始化数据库表结构
func SetupDatabase(db *gorm.DB) error {
	// 自动迁移表结构
	return db.AutoMigrate(
		&User{},
		&Event{},
		&RSVP{},
		&HelperRequest{},
		&HelperApplication{},
		&Friendship{},
		&Message{},
		&Bookmark{},
		&UserProfile{},
	)
}
