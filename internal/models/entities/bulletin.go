package entities

type BulletinType string

const (
	BulletinInfo     BulletinType = "Info"
	BulletinWarning  BulletinType = "Warning"
	BulletinCritical BulletinType = "Critical"
	BulletinUpdate   BulletinType = "Update"
)

type Bulletin struct {
	Base
	Title       string       `json:"title" validate:"required"`
	Message     string       `json:"message" validate:"required"`
	Type        BulletinType `json:"type" validate:"oneof=Info Warning Critical Update"`
	IsActive    bool         `json:"isActive"`
	PublishedAt string       `json:"publishedAt"`
}

func (b *Bulletin) applyDefaults() {
	if b.Type == "" {
		b.Type = BulletinInfo
	}
}

type NotificationType string

const (
	NotificationInfo     NotificationType = "Info"
	NotificationAlert    NotificationType = "Alert"
	NotificationReminder NotificationType = "Reminder"
	NotificationSystem   NotificationType = "System"
)

type Notification struct {
	Base
	Type      NotificationType `json:"type" validate:"oneof=Info Alert Reminder System"`
	Message   string           `json:"message" validate:"required"`
	Details   string           `json:"details"`
	Link      string           `json:"link"`
	IsRead    bool             `json:"isRead"`
	Timestamp string           `json:"timestamp"`
	SourceKey string           `json:"sourceKey"`
}

func (n *Notification) applyDefaults() {
	if n.Type == "" {
		n.Type = NotificationInfo
	}
}
