package dto

// ReportItemRequest covers both lost and found reports. Date uses the
// YYYY-MM-DD form; an unparsable or absent date is stored as the zero date
// and the pair simply never qualifies on date proximity.
type ReportItemRequest struct {
	Category    string `json:"category" form:"category"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date"`
	Location    string `json:"location" form:"location"`
}

type StatsResponse struct {
	PendingClaims  int64 `json:"pending_claims"`
	UnresolvedLost int64 `json:"unresolved_lost"`
	UnclaimedFound int64 `json:"unclaimed_found"`
	PendingMatches int64 `json:"pending_matches"`
}
