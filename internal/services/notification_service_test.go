package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/models/entities"
)

func TestNotificationService_Generate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	notifications := NewNotificationService(s, m)
	notifications.now = fixedClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	fleet := NewFleetService(s, nil, 0)
	maintenance := NewMaintenanceService(s)
	crew := NewCrewService(s)
	docs := NewDocumentService(s, fleet, nil)

	a, err := fleet.SaveAircraft(ctx, &entities.FleetAircraft{TailNumber: "N208CX", Model: "C208B"})
	require.NoError(t, err)

	dueSoon, err := maintenance.SaveMelItem(ctx, &entities.MelItem{
		AircraftID: a.ID, MelNumber: "33-40-01", DateEntered: "2023-12-20", DueDate: "2024-01-04",
	})
	require.NoError(t, err)
	_, err = maintenance.SaveMelItem(ctx, &entities.MelItem{
		AircraftID: a.ID, MelNumber: "33-40-02", DateEntered: "2023-12-20", DueDate: "2024-03-01",
	})
	require.NoError(t, err)
	_, err = maintenance.SaveMelItem(ctx, &entities.MelItem{
		AircraftID: a.ID, MelNumber: "33-40-03", DateEntered: "2023-12-20", DueDate: "2023-12-30",
		Status: entities.StatusClosed, CorrectiveAction: "Replaced lamp", ClosedDate: "2023-12-29",
	})
	require.NoError(t, err)
	overdue, err := maintenance.SaveDiscrepancy(ctx, &entities.AircraftDiscrepancy{
		AircraftID: a.ID, DateDiscovered: "2023-12-01", Description: "Oil leak", DueDate: "2023-12-28",
	})
	require.NoError(t, err)

	pilot, err := crew.SaveCrewMember(ctx, &entities.CrewMember{FirstName: "Ada", LastName: "Vance", Role: entities.CrewCaptain})
	require.NoError(t, err)
	_, err = crew.SaveDocument(ctx, &entities.CrewDocument{
		CrewMemberID: pilot.ID, DocumentName: "First class medical", DocumentType: entities.DocMedical, ExpiryDate: "2024-01-20",
	})
	require.NoError(t, err)
	_, err = docs.SaveDocument(ctx, &entities.AircraftDocument{
		AircraftID: a.ID, DocumentName: "Registration", ExpiryDate: "2025-06-01",
	})
	require.NoError(t, err)

	created, err := notifications.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.NotificationsGeneratedTotal))

	// A second pass creates nothing new.
	created, err = notifications.Generate(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	all, err := notifications.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byKey := map[string]entities.Notification{}
	for _, n := range all {
		byKey[n.ID] = n
	}
	mel := byKey[sourceKey("mel", dueSoon.ID, "2024-01-04")]
	assert.Equal(t, entities.NotificationReminder, mel.Type)
	assert.Contains(t, mel.Message, "MEL 33-40-01 on N208CX is due in 3 days")

	disc := byKey[sourceKey("discrepancy", overdue.ID, "2023-12-28")]
	assert.Equal(t, entities.NotificationAlert, disc.Type)
	assert.Contains(t, disc.Message, "overdue")

	var medical *entities.Notification
	for i := range all {
		if strings.HasPrefix(all[i].ID, "crewdoc-") {
			medical = &all[i]
		}
	}
	require.NotNil(t, medical)
	assert.Contains(t, medical.Message, "First class medical for Ada Vance expires in 19 days")
}

func TestNotificationService_ReadFlags(t *testing.T) {
	s := NewNotificationService(setupTestStore(t), nil)
	s.now = fixedClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := s.Create(ctx, &entities.Notification{Message: "Hangar door maintenance on Friday"})
	require.NoError(t, err)
	assert.Equal(t, entities.NotificationInfo, first.Type)
	assert.Equal(t, "2024-01-01T09:00:00.000Z", first.Timestamp)
	_, err = s.Create(ctx, &entities.Notification{Message: "New fuel vendor at KPBI"})
	require.NoError(t, err)

	read, err := s.MarkRead(ctx, first.ID, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	changed, err := s.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	all, err := s.ListNotifications(ctx)
	require.NoError(t, err)
	for _, n := range all {
		assert.True(t, n.IsRead, n.Message)
	}
}
