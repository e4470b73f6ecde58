package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/rules"
	"flightops360/hangar/internal/store"
)

// NotificationService stores notifications and derives reminders from
// maintenance items and document expiry each time notifications are read.
type NotificationService struct {
	notifications *Collection[entities.Notification, *entities.Notification]
	fleet         *Collection[entities.FleetAircraft, *entities.FleetAircraft]
	mel           *Collection[entities.MelItem, *entities.MelItem]
	discrepancies *Collection[entities.AircraftDiscrepancy, *entities.AircraftDiscrepancy]
	crew          *Collection[entities.CrewMember, *entities.CrewMember]
	crewDocs      *Collection[entities.CrewDocument, *entities.CrewDocument]
	aircraftDocs  *Collection[entities.AircraftDocument, *entities.AircraftDocument]
	metrics       *metrics.MetricsRegistry
	now           func() time.Time
}

func NewNotificationService(s store.Store, m *metrics.MetricsRegistry) *NotificationService {
	return &NotificationService{
		notifications: NewCollection[entities.Notification](s, constants.CollectionNotifications, "notification"),
		fleet:         NewCollection[entities.FleetAircraft](s, constants.CollectionFleet, "fleet aircraft"),
		mel:           NewCollection[entities.MelItem](s, constants.CollectionMelItems, "MEL item"),
		discrepancies: NewCollection[entities.AircraftDiscrepancy](s, constants.CollectionDiscrepancies, "discrepancy"),
		crew:          NewCollection[entities.CrewMember](s, constants.CollectionCrew, "crew member"),
		crewDocs:      NewCollection[entities.CrewDocument](s, constants.CollectionCrewDocuments, "crew document"),
		aircraftDocs:  NewCollection[entities.AircraftDocument](s, constants.CollectionAircraftDocuments, "aircraft document"),
		metrics:       m,
		now:           time.Now,
	}
}

// ListNotifications generates pending reminders, then returns every
// notification newest first.
func (s *NotificationService) ListNotifications(ctx context.Context) ([]entities.Notification, error) {
	if _, err := s.Generate(ctx); err != nil {
		return nil, err
	}
	all, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByDate(all, func(n *entities.Notification) string { return n.Timestamp }, false)
	return all, nil
}

// Create stores a notification, stamping it with the current time.
func (s *NotificationService) Create(ctx context.Context, n *entities.Notification) (*entities.Notification, error) {
	if n.Type == "" {
		n.Type = entities.NotificationInfo
	}
	if n.Timestamp == "" {
		n.Timestamp = isoTime(s.now())
	}
	return s.notifications.Save(ctx, n)
}

// MarkRead sets the read flag of one notification.
func (s *NotificationService) MarkRead(ctx context.Context, id string, read bool) (*entities.Notification, error) {
	n, err := s.notifications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n.IsRead = read
	return s.notifications.Save(ctx, n)
}

// MarkAllRead returns the number of notifications it changed.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := s.notifications.List(ctx, store.Eq("isRead", false))
	if err != nil {
		return 0, err
	}
	for i := range unread {
		unread[i].IsRead = true
		if _, err := s.notifications.Save(ctx, &unread[i]); err != nil {
			return 0, err
		}
	}
	return len(unread), nil
}

func (s *NotificationService) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return s.notifications.Delete(ctx, id)
}

// Generate creates a notification for every open MEL item or discrepancy due
// within a week or overdue, and for every crew or aircraft document expiring
// within thirty days. Ids are derived from the source record and its date,
// so a reminder is created once per date. It returns how many were created.
func (s *NotificationService) Generate(ctx context.Context) (int, error) {
	var (
		existing      []entities.Notification
		fleet         []entities.FleetAircraft
		mel           []entities.MelItem
		discrepancies []entities.AircraftDiscrepancy
		crew          []entities.CrewMember
		crewDocs      []entities.CrewDocument
		aircraftDocs  []entities.AircraftDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { existing, err = s.notifications.List(gctx); return })
	g.Go(func() (err error) { fleet, err = s.fleet.List(gctx); return })
	g.Go(func() (err error) { mel, err = s.mel.List(gctx); return })
	g.Go(func() (err error) { discrepancies, err = s.discrepancies.List(gctx); return })
	g.Go(func() (err error) { crew, err = s.crew.List(gctx); return })
	g.Go(func() (err error) { crewDocs, err = s.crewDocs.List(gctx); return })
	g.Go(func() (err error) { aircraftDocs, err = s.aircraftDocs.List(gctx); return })
	if err := g.Wait(); err != nil {
		return 0, err
	}

	now := s.now()
	tails := make(map[string]string, len(fleet))
	for _, a := range fleet {
		tails[a.ID] = a.TailNumber
	}
	names := make(map[string]string, len(crew))
	for i := range crew {
		names[crew[i].ID] = crew[i].FullName()
	}
	tail := func(aircraftID, fallback string) string {
		if t := tails[aircraftID]; t != "" {
			return t
		}
		if fallback != "" {
			return fallback
		}
		return "unknown aircraft"
	}

	var candidates []entities.Notification
	for _, m := range mel {
		if m.Status == entities.StatusClosed || !rules.DueWithin(m.DueDate, now, constants.DueSoonDays) {
			continue
		}
		candidates = append(candidates, dueNotification(now, "mel", m.ID, m.DueDate,
			fmt.Sprintf("MEL %s on %s", m.MelNumber, tail(m.AircraftID, m.TailNumber)),
			m.Description, "/maintenance/mel"))
	}
	for _, d := range discrepancies {
		if d.Status == entities.StatusClosed || !rules.DueWithin(d.DueDate, now, constants.DueSoonDays) {
			continue
		}
		candidates = append(candidates, dueNotification(now, "discrepancy", d.ID, d.DueDate,
			fmt.Sprintf("Discrepancy on %s", tail(d.AircraftID, d.TailNumber)),
			d.Description, "/maintenance/discrepancies"))
	}
	for _, d := range crewDocs {
		if !rules.DueWithin(d.ExpiryDate, now, constants.ExpiringSoonDays) {
			continue
		}
		who := names[d.CrewMemberID]
		if who == "" {
			who = "unknown crew member"
		}
		candidates = append(candidates, expiryNotification(now, "crewdoc", d.ID, d.ExpiryDate,
			fmt.Sprintf("%s for %s", d.DocumentName, who), "/crew/documents"))
	}
	for _, d := range aircraftDocs {
		if !rules.DueWithin(d.ExpiryDate, now, constants.ExpiringSoonDays) {
			continue
		}
		candidates = append(candidates, expiryNotification(now, "aircraftdoc", d.ID, d.ExpiryDate,
			fmt.Sprintf("%s for %s", d.DocumentName, tail(d.AircraftID, "")), "/aircraft/documents"))
	}

	seen := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		seen[n.ID] = struct{}{}
	}
	created := 0
	for i := range candidates {
		if _, ok := seen[candidates[i].ID]; ok {
			continue
		}
		if _, err := s.notifications.Save(ctx, &candidates[i]); err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		logging.Info("notifications generated", "count", created)
		if s.metrics != nil {
			s.metrics.NotificationsGeneratedTotal.Add(float64(created))
		}
	}
	return created, nil
}

func sourceKey(kind, id, date string) string {
	return fmt.Sprintf("%s-%s-%s", kind, id, date)
}

func dueNotification(now time.Time, kind, id, dueDate, subject, details, link string) entities.Notification {
	days, _ := rules.DaysUntil(dueDate, now)
	n := entities.Notification{
		Base:      entities.Base{ID: sourceKey(kind, id, dueDate)},
		Type:      entities.NotificationReminder,
		Details:   details,
		Link:      link,
		Timestamp: isoTime(now),
		SourceKey: sourceKey(kind, id, dueDate),
	}
	switch {
	case days < 0:
		n.Type = entities.NotificationAlert
		n.Message = fmt.Sprintf("%s is overdue since %s", subject, dueDate)
	case days == 0:
		n.Type = entities.NotificationAlert
		n.Message = fmt.Sprintf("%s is due today", subject)
	default:
		n.Message = fmt.Sprintf("%s is due in %d days (%s)", subject, days, dueDate)
	}
	return n
}

func expiryNotification(now time.Time, kind, id, expiry, subject, link string) entities.Notification {
	days, _ := rules.DaysUntil(expiry, now)
	n := entities.Notification{
		Base:      entities.Base{ID: sourceKey(kind, id, expiry)},
		Type:      entities.NotificationReminder,
		Link:      link,
		Timestamp: isoTime(now),
		SourceKey: sourceKey(kind, id, expiry),
	}
	if days < 0 {
		n.Type = entities.NotificationAlert
		n.Message = fmt.Sprintf("%s expired on %s", subject, expiry)
	} else {
		n.Message = fmt.Sprintf("%s expires in %d days (%s)", subject, days, expiry)
	}
	return n
}
