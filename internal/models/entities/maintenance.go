package entities

// ItemStatus is the lifecycle state shared by MEL items and discrepancies.
type ItemStatus string

const (
	StatusOpen     ItemStatus = "Open"
	StatusDeferred ItemStatus = "Deferred"
	StatusClosed   ItemStatus = "Closed"
)

type MaintenanceItemType string

const (
	ItemInspection          MaintenanceItemType = "Inspection"
	ItemServiceBulletin     MaintenanceItemType = "Service Bulletin"
	ItemAirworthinessDirect MaintenanceItemType = "Airworthiness Directive"
	ItemComponentReplace    MaintenanceItemType = "Component Replacement"
	ItemOther               MaintenanceItemType = "Other"
)

type TrackType string

const (
	TrackInterval  TrackType = "Interval"
	TrackOneTime   TrackType = "One Time"
	TrackDontAlert TrackType = "Dont Alert"
)

// MaintenanceTask is a recurring or one-time maintenance requirement.
type MaintenanceTask struct {
	Base
	AircraftID          string              `json:"aircraftId" validate:"required"`
	ItemTitle           string              `json:"itemTitle" validate:"required"`
	ReferenceNumber     string              `json:"referenceNumber"`
	ItemType            MaintenanceItemType `json:"itemType" validate:"oneof=Inspection 'Service Bulletin' 'Airworthiness Directive' 'Component Replacement' Other"`
	AssociatedComponent string              `json:"associatedComponent"`
	TrackType           TrackType           `json:"trackType" validate:"oneof=Interval 'One Time' 'Dont Alert'"`
	IsActive            bool                `json:"isActive"`
	Details             string              `json:"details"`

	IsHoursDueEnabled  bool    `json:"isHoursDueEnabled"`
	HoursDue           float64 `json:"hoursDue" validate:"gte=0"`
	IsCyclesDueEnabled bool    `json:"isCyclesDueEnabled"`
	CyclesDue          float64 `json:"cyclesDue" validate:"gte=0"`
	IsDaysDueEnabled   bool    `json:"isDaysDueEnabled"`
	DaysDueValue       float64 `json:"daysDueValue" validate:"gte=0"`

	LastCompletedDate   string  `json:"lastCompletedDate"`
	LastCompletedHours  float64 `json:"lastCompletedHours" validate:"gte=0"`
	LastCompletedCycles float64 `json:"lastCompletedCycles" validate:"gte=0"`

	ExactDueDate string  `json:"exactDueDate"`
	DueAtHours   float64 `json:"dueAtHours"`
	DueAtCycles  float64 `json:"dueAtCycles"`

	AlertDaysPrior   float64 `json:"alertDaysPrior" validate:"gte=0"`
	AlertHoursPrior  float64 `json:"alertHoursPrior" validate:"gte=0"`
	AlertCyclesPrior float64 `json:"alertCyclesPrior" validate:"gte=0"`
}

func (t *MaintenanceTask) applyDefaults() {
	if t.ItemType == "" {
		t.ItemType = ItemOther
	}
	if t.TrackType == "" {
		t.TrackType = TrackInterval
	}
}

type MelCategory string

const (
	MelCategoryA MelCategory = "A"
	MelCategoryB MelCategory = "B"
	MelCategoryC MelCategory = "C"
	MelCategoryD MelCategory = "D"
)

// MelItem is a Minimum Equipment List deferral against one aircraft. An
// empty status means the caller left it to be derived.
type MelItem struct {
	Base
	AircraftID           string      `json:"aircraftId" validate:"required"`
	TailNumber           string      `json:"tailNumber"`
	MelNumber            string      `json:"melNumber" validate:"required"`
	Description          string      `json:"description"`
	Category             MelCategory `json:"category" validate:"omitempty,oneof=A B C D"`
	Status               ItemStatus  `json:"status" validate:"omitempty,oneof=Open Deferred Closed"`
	IsDeferred           bool        `json:"isDeferred"`
	DateEntered          string      `json:"dateEntered" validate:"required"`
	DueDate              string      `json:"dueDate"`
	ClosedDate           string      `json:"closedDate"`
	CorrectiveAction     string      `json:"correctiveAction"`
	ProvisionsProcedures string      `json:"provisionsProcedures"`
	Notes                string      `json:"notes"`
}

// AircraftDiscrepancy is a defect found on an aircraft.
type AircraftDiscrepancy struct {
	Base
	AircraftID             string     `json:"aircraftId" validate:"required"`
	TailNumber             string     `json:"tailNumber"`
	Status                 ItemStatus `json:"status" validate:"omitempty,oneof=Open Deferred Closed"`
	DateDiscovered         string     `json:"dateDiscovered" validate:"required"`
	TimeDiscovered         string     `json:"timeDiscovered"`
	Description            string     `json:"description" validate:"required"`
	DiscoveredBy           string     `json:"discoveredBy"`
	DiscoveredByCertNumber string     `json:"discoveredByCertNumber"`
	IsDeferred             bool       `json:"isDeferred"`
	DeferralReference      string     `json:"deferralReference"`
	DeferralJustification  string     `json:"deferralJustification"`
	DueDate                string     `json:"dueDate"`
	CorrectiveAction       string     `json:"correctiveAction"`
	DateCorrected          string     `json:"dateCorrected"`
	CorrectedBy            string     `json:"correctedBy"`
	InspectedBy            string     `json:"inspectedBy"`
}

type CostType string

const (
	CostScheduled   CostType = "Scheduled"
	CostUnscheduled CostType = "Unscheduled"
	CostInspection  CostType = "Inspection"
	CostAOG         CostType = "AOG"
)

type CostBreakdown struct {
	Category      string  `json:"category" validate:"required"`
	ProjectedCost float64 `json:"projectedCost" validate:"gte=0"`
	ActualCost    float64 `json:"actualCost" validate:"gte=0"`
}

type CostAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MaintenanceCost is one maintenance invoice. The totals are derived from
// the breakdowns on save.
type MaintenanceCost struct {
	Base
	AircraftID         string           `json:"aircraftId" validate:"required"`
	TailNumber         string           `json:"tailNumber"`
	InvoiceDate        string           `json:"invoiceDate" validate:"required"`
	InvoiceNumber      string           `json:"invoiceNumber"`
	CostType           CostType         `json:"costType" validate:"oneof=Scheduled Unscheduled Inspection AOG"`
	CostBreakdowns     []CostBreakdown  `json:"costBreakdowns" validate:"dive"`
	Notes              string           `json:"notes"`
	Attachments        []CostAttachment `json:"attachments"`
	TotalProjectedCost float64          `json:"totalProjectedCost"`
	TotalActualCost    float64          `json:"totalActualCost"`
}
