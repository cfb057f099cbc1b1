package model

import "time"

// Portfolio is an investment in a portfolio company. Status is free text
// and may embed extra context, e.g. "Realized (July 2022)". The logo is
// optional: LogoURL and LogoPublicID are either both set or both nil.
type Portfolio struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry"`
	InitialInvestment time.Time `json:"initialInvestment"`
	Headquarters      string    `json:"headquarters"`
	Acquisitions      int       `json:"acquisitions"`
	Status            string    `json:"status"`
	Fund              string    `json:"fund"`
	LogoURL           *string   `json:"logoUrl"`
	LogoPublicID      *string   `json:"logoPublicId"`
	UploadDate        time.Time `json:"uploadDate"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// HasLogo reports whether the company references a remote asset.
func (p *Portfolio) HasLogo() bool {
	return p.LogoPublicID != nil && *p.LogoPublicID != ""
}
