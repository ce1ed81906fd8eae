package profile

import (
	"encoding/json"
	"strings"
	"time"

	"eventa/internal/model"
)

// InterestList 兴趣标签列表
// 请求里既可以传数组也可以传预先用逗号拼好的字符串，存储时统一拼接
type InterestList []string

// UnmarshalJSON 同时接受 ["a","b"] 和 "a,b" 两种形式
func (l *InterestList) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err == nil {
		*l = tags
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}

	if joined == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(joined, ",")
	return nil
}

// Join 拼接为存储格式
func (l InterestList) Join() string {
	return strings.Join(l, ",")
}

// UpdateProfileRequest 更新资料请求，只更新出现的字段
type UpdateProfileRequest struct {
	DisplayName             *string       `json:"display_name"`
	Bio                     *string       `json:"bio"`
	Location                *string       `json:"location"`
	Interests               *InterestList `json:"interests"`
	ProfilePictureURL       *string       `json:"profile_picture_url"`
	PrivacyLevel            *string       `json:"privacy_level" binding:"omitempty,oneof=public friends_only private"`
	NotificationPreferences *string       `json:"notification_preferences"`
}

// ProfileResponse 资料响应，interests 对外是数组
type ProfileResponse struct {
	ID                      uint      `json:"id"`
	UserID                  uint      `json:"user_id"`
	DisplayName             string    `json:"display_name"`
	Bio                     string    `json:"bio"`
	Location                string    `json:"location"`
	Interests               []string  `json:"interests"`
	ProfilePictureURL       string    `json:"profile_picture_url"`
	PrivacyLevel            string    `json:"privacy_level"`
	NotificationPreferences string    `json:"notification_preferences"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// newProfileResponse 把存储模型转成响应
func newProfileResponse(p *model.UserProfile) *ProfileResponse {
	interests := []string{}
	if p.Interests != "" {
		interests = strings.Split(p.Interests, ",")
	}

	return &ProfileResponse{
		ID:                      p.ID,
		UserID:                  p.UserID,
		DisplayName:             p.DisplayName,
		Bio:                     p.Bio,
		Location:                p.Location,
		Interests:               interests,
		ProfilePictureURL:       p.ProfilePictureURL,
		PrivacyLevel:            p.PrivacyLevel,
		NotificationPreferences: p.NotificationPreferences,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}
