package entities

type CrewRole string

const (
	CrewCaptain         CrewRole = "Captain"
	CrewFirstOfficer    CrewRole = "First Officer"
	CrewFlightAttendant CrewRole = "Flight Attendant"
	CrewMechanic        CrewRole = "Mechanic"
	CrewDispatcher      CrewRole = "Dispatcher"
	CrewOther           CrewRole = "Other"
)

type CrewLicense struct {
	Type   string `json:"type" validate:"required"`
	Number string `json:"number"`
}

type CrewMember struct {
	Base
	FirstName              string        `json:"firstName" validate:"required"`
	LastName               string        `json:"lastName" validate:"required"`
	EmployeeID             string        `json:"employeeId"`
	Role                   CrewRole      `json:"role" validate:"oneof=Captain 'First Officer' 'Flight Attendant' Mechanic Dispatcher Other"`
	Email                  string        `json:"email" validate:"omitempty,email"`
	Phone                  string        `json:"phone"`
	HomeBase               string        `json:"homeBase"`
	IsActive               bool          `json:"isActive"`
	QualifiedAircraftTypes []string      `json:"qualifiedAircraftTypes"`
	Licenses               []CrewLicense `json:"licenses" validate:"dive"`
	Notes                  string        `json:"notes"`
}

func (c *CrewMember) applyDefaults() {
	if c.Role == "" {
		c.Role = CrewOther
	}
}

// FullName is used in notification text and generated documents.
func (c *CrewMember) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}

type CrewDocumentType string

const (
	DocLicense  CrewDocumentType = "License"
	DocMedical  CrewDocumentType = "Medical"
	DocPassport CrewDocumentType = "Passport"
	DocVisa     CrewDocumentType = "Visa"
	DocTraining CrewDocumentType = "Training Certificate"
	DocOther    CrewDocumentType = "Other"
)

type CrewDocument struct {
	Base
	CrewMemberID string           `json:"crewMemberId" validate:"required"`
	DocumentName string           `json:"documentName" validate:"required"`
	DocumentType CrewDocumentType `json:"documentType" validate:"oneof=License Medical Passport Visa 'Training Certificate' Other"`
	IssueDate    string           `json:"issueDate"`
	ExpiryDate   string           `json:"expiryDate"`
	FileURL      string           `json:"fileUrl"`
	Notes        string           `json:"notes"`
}

func (d *CrewDocument) applyDefaults() {
	if d.DocumentType == "" {
		d.DocumentType = DocOther
	}
}
