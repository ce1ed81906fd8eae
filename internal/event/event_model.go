package event

// EventFilter 活动列表的筛选条件
type EventFilter struct {
	Category      string `form:"category"`
	Search        string `form:"search"`
	Location      string `form:"location"`
	HelpersNeeded string `form:"helpers_needed"`
	PriceFilter   string `form:"price_filter"` // free, paid
}

// CreateEventRequest 创建活动请求
type CreateEventRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Price         string `json:"price"`
	ImageURL      string `json:"image_url"`
	Category      string `json:"category" binding:"required"`
	OrganizerID   uint   `json:"organizer_id" binding:"required"`
	OrganizerName string `json:"organizer_name" binding:"required"`
	HelpersNeeded bool   `json:"helpers_needed"`
	Visibility    string `json:"visibility" binding:"omitempty,oneof=public private invite-only"`
}

// UpdateEventRequest 更新活动请求，只更新出现在请求体里的字段
type UpdateEventRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Location      *string `json:"location"`
	Price         *string `json:"price"`
	ImageURL      *string `json:"image_url"`
	Category      *string `json:"category"`
	HelpersNeeded *bool   `json:"helpers_needed"`
	Visibility    *string `json:"visibility" binding:"omitempty,oneof=public private invite-only"`
}

// RSVPRequest 活动参与意向请求
type RSVPRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=interested going not_going"`
}

// CreateHelperRequestRequest 创建帮手招募请求
type CreateHelperRequestRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	HelpersNeeded  *int   `json:"helpers_needed" binding:"omitempty,gte=0"`
	IsPaid         bool   `json:"is_paid"`
	PaymentAmount  string `json:"payment_amount"`
	SkillsRequired string `json:"skills_required"`
}

// ApplyHelperRequest 帮手申请请求
type ApplyHelperRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message"`
}

// RespondApplicationRequest 处理帮手申请请求
type RespondApplicationRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}
