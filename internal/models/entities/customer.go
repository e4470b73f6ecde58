package entities

type CustomerType string

const (
	CustomerCharter    CustomerType = "Charter"
	CustomerCorporate  CustomerType = "Corporate"
	CustomerIndividual CustomerType = "Individual"
	CustomerBroker     CustomerType = "Broker"
	CustomerOther      CustomerType = "Other"
)

type Customer struct {
	Base
	Name             string       `json:"name" validate:"required"`
	CustomerType     CustomerType `json:"customerType" validate:"oneof=Charter Corporate Individual Broker Other"`
	ContactFirstName string       `json:"contactFirstName"`
	ContactLastName  string       `json:"contactLastName"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	StreetAddress1   string       `json:"streetAddress1"`
	StreetAddress2   string       `json:"streetAddress2"`
	City             string       `json:"city"`
	State            string       `json:"state"`
	PostalCode       string       `json:"postalCode"`
	Country          string       `json:"country"`
	IsActive         bool         `json:"isActive"`
	StartDate        string       `json:"startDate"`
	Notes            string       `json:"notes"`
}

func (c *Customer) applyDefaults() {
	if c.CustomerType == "" {
		c.CustomerType = CustomerCharter
	}
}
