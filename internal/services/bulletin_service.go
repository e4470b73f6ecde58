package services

import (
	"context"
	"time"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/store"
)

// BulletinService manages company bulletins. Publishing one raises a
// notification.
type BulletinService struct {
	bulletins     *Collection[entities.Bulletin, *entities.Bulletin]
	notifications *NotificationService
	now           func() time.Time
}

func NewBulletinService(s store.Store, notifications *NotificationService) *BulletinService {
	return &BulletinService{
		bulletins:     NewCollection[entities.Bulletin](s, constants.CollectionBulletins, "bulletin"),
		notifications: notifications,
		now:           time.Now,
	}
}

// ListBulletins returns bulletins most recently published first. activeOnly
// drops inactive ones.
func (s *BulletinService) ListBulletins(ctx context.Context, activeOnly bool) ([]entities.Bulletin, error) {
	var filters []store.Filter
	if activeOnly {
		filters = append(filters, store.Eq("isActive", true))
	}
	bulletins, err := s.bulletins.List(ctx, filters...)
	if err != nil {
		return nil, err
	}
	sortByDate(bulletins, func(b *entities.Bulletin) string { return b.PublishedAt }, false)
	return bulletins, nil
}

func (s *BulletinService) GetBulletin(ctx context.Context, id string) (*entities.Bulletin, error) {
	return s.bulletins.Get(ctx, id)
}

// SaveBulletin stores b. When b becomes active, either on creation or by an
// inactive bulletin being switched on, it is stamped with a publish time
// and a notification is created for it.
func (s *BulletinService) SaveBulletin(ctx context.Context, b *entities.Bulletin) (*entities.Bulletin, error) {
	wasActive := false
	if b.ID != "" {
		prior, err := s.bulletins.Find(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			wasActive = prior.IsActive
			b.PublishedAt = firstNonEmpty(b.PublishedAt, prior.PublishedAt)
		}
	}
	publishing := b.IsActive && !wasActive
	if publishing {
		b.PublishedAt = isoTime(s.now())
	}

	saved, err := s.bulletins.Save(ctx, b)
	if err != nil {
		return nil, err
	}
	if publishing {
		s.announce(ctx, saved)
	}
	return saved, nil
}

// announce failures are logged; the bulletin itself is already stored.
func (s *BulletinService) announce(ctx context.Context, b *entities.Bulletin) {
	if s.notifications == nil {
		return
	}
	kind := entities.NotificationInfo
	if b.Type == entities.BulletinCritical || b.Type == entities.BulletinWarning {
		kind = entities.NotificationAlert
	}
	key := sourceKey("bulletin", b.ID, b.PublishedAt)
	_, err := s.notifications.Create(ctx, &entities.Notification{
		Base:      entities.Base{ID: key},
		Type:      kind,
		Message:   "New bulletin: " + b.Title,
		Details:   b.Message,
		Link:      "/bulletins",
		SourceKey: key,
	})
	if err != nil {
		logging.Warn("failed to create bulletin notification", "bulletinId", b.ID, "error", err)
	}
}

func (s *BulletinService) DeleteBulletin(ctx context.Context, id string) (*DeleteResult, error) {
	return s.bulletins.Delete(ctx, id)
}
