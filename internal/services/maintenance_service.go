package services

import (
	"context"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/rules"
	"flightops360/hangar/internal/store"
)

// MaintenanceService covers maintenance tasks, MEL items, discrepancies and
// maintenance costs.
type MaintenanceService struct {
	tasks         *Collection[entities.MaintenanceTask, *entities.MaintenanceTask]
	mel           *Collection[entities.MelItem, *entities.MelItem]
	discrepancies *Collection[entities.AircraftDiscrepancy, *entities.AircraftDiscrepancy]
	costs         *Collection[entities.MaintenanceCost, *entities.MaintenanceCost]
}

func NewMaintenanceService(s store.Store) *MaintenanceService {
	return &MaintenanceService{
		tasks:         NewCollection[entities.MaintenanceTask](s, constants.CollectionMaintenanceTasks, "maintenance task"),
		mel:           NewCollection[entities.MelItem](s, constants.CollectionMelItems, "MEL item"),
		discrepancies: NewCollection[entities.AircraftDiscrepancy](s, constants.CollectionDiscrepancies, "discrepancy"),
		costs:         NewCollection[entities.MaintenanceCost](s, constants.CollectionMaintenanceCosts, "maintenance cost"),
	}
}

// ListTasks returns the tasks of one aircraft, or of the whole fleet when
// aircraftID is empty, soonest exact due date first.
func (s *MaintenanceService) ListTasks(ctx context.Context, aircraftID string) ([]entities.MaintenanceTask, error) {
	tasks, err := s.tasks.List(ctx, byParent("aircraftId", aircraftID)...)
	if err != nil {
		return nil, err
	}
	sortByDate(tasks, func(t *entities.MaintenanceTask) string { return t.ExactDueDate }, true)
	return tasks, nil
}

func (s *MaintenanceService) GetTask(ctx context.Context, id string) (*entities.MaintenanceTask, error) {
	return s.tasks.Get(ctx, id)
}

func (s *MaintenanceService) SaveTask(ctx context.Context, t *entities.MaintenanceTask) (*entities.MaintenanceTask, error) {
	return s.tasks.Save(ctx, t)
}

func (s *MaintenanceService) DeleteTask(ctx context.Context, id string) (*DeleteResult, error) {
	return s.tasks.Delete(ctx, id)
}

// TasksByID loads the tasks named by ids, in that order.
func (s *MaintenanceService) TasksByID(ctx context.Context, ids []string) ([]entities.MaintenanceTask, error) {
	out := make([]entities.MaintenanceTask, 0, len(ids))
	for _, id := range ids {
		t, err := s.tasks.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

// ListMelItems returns MEL items newest entry first.
func (s *MaintenanceService) ListMelItems(ctx context.Context, aircraftID string) ([]entities.MelItem, error) {
	items, err := s.mel.List(ctx, byParent("aircraftId", aircraftID)...)
	if err != nil {
		return nil, err
	}
	sortByDate(items, func(m *entities.MelItem) string { return m.DateEntered }, false)
	return items, nil
}

func (s *MaintenanceService) GetMelItem(ctx context.Context, id string) (*entities.MelItem, error) {
	return s.mel.Get(ctx, id)
}

// SaveMelItem derives the status from the stored item before writing. A
// closed item must carry a corrective action and a closed date, taken from
// the input or the stored item. Every other field is written as given, so
// reopening an item with those fields empty clears them.
func (s *MaintenanceService) SaveMelItem(ctx context.Context, item *entities.MelItem) (*entities.MelItem, error) {
	var prior *entities.MelItem
	if item.ID != "" {
		var err error
		if prior, err = s.mel.Find(ctx, item.ID); err != nil {
			return nil, err
		}
	}

	var priorStatus entities.ItemStatus
	if prior != nil {
		priorStatus = prior.Status
	}
	item.Status, item.IsDeferred = rules.DeriveItemStatus(priorStatus, item.Status, item.IsDeferred)

	if item.Status == entities.StatusClosed {
		action, closed := item.CorrectiveAction, item.ClosedDate
		if prior != nil {
			action = firstNonEmpty(action, prior.CorrectiveAction)
			closed = firstNonEmpty(closed, prior.ClosedDate)
		}
		if action == "" {
			return nil, apperr.Invalid("correctiveAction", "is required to close a MEL item")
		}
		if closed == "" {
			return nil, apperr.Invalid("closedDate", "is required to close a MEL item")
		}
		item.CorrectiveAction, item.ClosedDate = action, closed
	}

	saved, err := s.mel.Save(ctx, item)
	if err != nil {
		return nil, err
	}
	logging.Info("MEL item saved", "id", saved.ID, "melNumber", saved.MelNumber, "status", saved.Status)
	return saved, nil
}

func (s *MaintenanceService) DeleteMelItem(ctx context.Context, id string) (*DeleteResult, error) {
	return s.mel.Delete(ctx, id)
}

// ListDiscrepancies returns discrepancies most recently discovered first.
func (s *MaintenanceService) ListDiscrepancies(ctx context.Context, aircraftID string) ([]entities.AircraftDiscrepancy, error) {
	items, err := s.discrepancies.List(ctx, byParent("aircraftId", aircraftID)...)
	if err != nil {
		return nil, err
	}
	sortByDate(items, func(d *entities.AircraftDiscrepancy) string { return d.DateDiscovered }, false)
	return items, nil
}

func (s *MaintenanceService) GetDiscrepancy(ctx context.Context, id string) (*entities.AircraftDiscrepancy, error) {
	return s.discrepancies.Get(ctx, id)
}

// SaveDiscrepancy applies the same status derivation as MEL items.
func (s *MaintenanceService) SaveDiscrepancy(ctx context.Context, d *entities.AircraftDiscrepancy) (*entities.AircraftDiscrepancy, error) {
	var priorStatus entities.ItemStatus
	if d.ID != "" {
		prior, err := s.discrepancies.Find(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			priorStatus = prior.Status
		}
	}
	d.Status, d.IsDeferred = rules.DeriveItemStatus(priorStatus, d.Status, d.IsDeferred)
	return s.discrepancies.Save(ctx, d)
}

func (s *MaintenanceService) DeleteDiscrepancy(ctx context.Context, id string) (*DeleteResult, error) {
	return s.discrepancies.Delete(ctx, id)
}

// ListCosts returns invoices newest first.
func (s *MaintenanceService) ListCosts(ctx context.Context, aircraftID string) ([]entities.MaintenanceCost, error) {
	costs, err := s.costs.List(ctx, byParent("aircraftId", aircraftID)...)
	if err != nil {
		return nil, err
	}
	sortByDate(costs, func(c *entities.MaintenanceCost) string { return c.InvoiceDate }, false)
	return costs, nil
}

func (s *MaintenanceService) GetCost(ctx context.Context, id string) (*entities.MaintenanceCost, error) {
	return s.costs.Get(ctx, id)
}

// SaveCost recomputes the projected and actual totals from the breakdowns.
func (s *MaintenanceService) SaveCost(ctx context.Context, c *entities.MaintenanceCost) (*entities.MaintenanceCost, error) {
	var projected, actual float64
	for _, b := range c.CostBreakdowns {
		projected += b.ProjectedCost
		actual += b.ActualCost
	}
	c.TotalProjectedCost = projected
	c.TotalActualCost = actual
	if c.CostBreakdowns == nil {
		c.CostBreakdowns = []entities.CostBreakdown{}
	}
	return s.costs.Save(ctx, c)
}

func (s *MaintenanceService) DeleteCost(ctx context.Context, id string) (*DeleteResult, error) {
	return s.costs.Delete(ctx, id)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
