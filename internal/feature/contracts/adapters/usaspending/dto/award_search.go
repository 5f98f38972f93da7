// Package dto defines data transfer objects for the USAspending API.
package dto

// AwardSearchRequest is the POST body for the spending_by_award endpoint.
type AwardSearchRequest struct {
	Filters AwardSearchFilters `json:"filters"`
	Fields  []string           `json:"fields"`
	Limit   int                `json:"limit"`
	Page    int                `json:"page"`
}

// AwardSearchFilters narrows the award search by recipient and award type.
type AwardSearchFilters struct {
	RecipientSearchText []string `json:"recipient_search_text"`
	AwardTypeCodes      []string `json:"award_type_codes"`
}

// AwardSearchResponse represents the spending_by_award result page.
type AwardSearchResponse struct {
	Results []AwardRow `json:"results"`
}

// AwardRow is a single search-result row. Keys follow USAspending's
// display-name field convention; optional fields are pointers so absence
// stays distinguishable from zero.
type AwardRow struct {
	InternalID     int64    `json:"internal_id"`
	AwardID        string   `json:"Award ID"`
	RecipientName  string   `json:"Recipient Name"`
	AwardAmount    *float64 `json:"Award Amount"`
	AwardingAgency string   `json:"Awarding Agency"`
	StartDate      string   `json:"Start Date"`
	AwardType      string   `json:"Contract Award Type"`
}
