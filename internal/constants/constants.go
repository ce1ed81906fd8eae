package constants

// RSVP 状态常量
const (
	RSVPStatusInterested = "interested" // 感兴趣
	RSVPStatusGoing      = "going"      // 参加
	RSVPStatusNotGoing   = "not_going"  // 不参加
)

// 活动可见性常量
const (
	VisibilityPublic     = "public"
	VisibilityPrivate    = "private"
	VisibilityInviteOnly = "invite-only"
)

// 好友关系状态常量
const (
	FriendshipStatusPending  = "pending"  // 待确认
	FriendshipStatusAccepted = "accepted" // 已接受
	FriendshipStatusRejected = "rejected" // 已拒绝
	FriendshipStatusBlocked  = "blocked"  // 已拉黑
)

// 消息类型常量
const (
	MessageTypeText        = "text"
	MessageTypeImage       = "image"
	MessageTypeEventInvite = "event_invite"
)

// 资料隐私级别常量
const (
	PrivacyPublic      = "public"
	PrivacyFriendsOnly = "friends_only"
	PrivacyPrivate     = "private"
)

// 帮手申请状态常量
const (
	ApplicationStatusPending  = "pending"  // 待处理
	ApplicationStatusAccepted = "accepted" // 已接受
	ApplicationStatusRejected = "rejected" // 已拒绝
)

// 活动价格筛选常量
const (
	PriceFilterFree = "free"
	PriceFilterPaid = "paid"
	PriceFree       = "Free" // price 字段的默认值
)

// 活动邀请消息的默认内容
const DefaultInviteContent = "You have been invited to an event!"

// 热门活动数量上限
const TrendingLimit = 10

// Redis键
const (
	RedisKeyTrendingEvents = "events:trending"
	RedisKeyCategories     = "events:categories"
	CacheExpirationSeconds = 60 // 列表缓存过期时间，单位秒
)
