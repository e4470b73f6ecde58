package entities

// ServiceFeeRate is one entry of the company fee catalog.
type ServiceFeeRate struct {
	DisplayDescription string  `json:"displayDescription"`
	Buy                float64 `json:"buy" validate:"gte=0"`
	Sell               float64 `json:"sell" validate:"gte=0"`
	UnitDescription    string  `json:"unitDescription"`
	IsActive           bool    `json:"isActive"`
}

// Keys of the fee catalog the quote builder knows how to select.
const (
	FeeMedics        = "MEDICS"
	FeeCatering      = "CATERING"
	FeeFuelSurcharge = "FUEL_SURCHARGE"
	FeeLandingFees   = "LANDING_FEES"
	FeeOvernight     = "OVERNIGHT"
)

// CompanyProfile is a singleton document.
type CompanyProfile struct {
	Base
	CompanyName     string                    `json:"companyName"`
	CompanyEmail    string                    `json:"companyEmail" validate:"omitempty,email"`
	CompanyPhone    string                    `json:"companyPhone"`
	CompanyAddress  string                    `json:"companyAddress"`
	LogoURL         string                    `json:"logoUrl"`
	ServiceFeeRates map[string]ServiceFeeRate `json:"serviceFeeRates" validate:"dive,keys,required,endkeys"`
}

type CompanyDocument struct {
	Base
	DocumentName  string   `json:"documentName" validate:"required"`
	DocumentType  string   `json:"documentType"`
	Description   string   `json:"description"`
	Version       string   `json:"version"`
	EffectiveDate string   `json:"effectiveDate"`
	ExpiryDate    string   `json:"expiryDate"`
	FileURL       string   `json:"fileUrl"`
	Tags          []string `json:"tags"`
}
