package dto

import "github.com/google/uuid"

type ConfirmMatchRequest struct {
	LostItemID  uuid.UUID `json:"lost_item_id"`
	FoundItemID uuid.UUID `json:"found_item_id"`
}

// SuggestionResponse is one algorithmically scored candidate pairing.
// Nothing is persisted for a suggestion until staff confirms it.
type SuggestionResponse struct {
	LostItemID      uuid.UUID `json:"lost_item_id"`
	FoundItemID     uuid.UUID `json:"found_item_id"`
	LostName        string    `json:"lost_name"`
	FoundName       string    `json:"found_name"`
	LostLocation    string    `json:"lost_location"`
	FoundLocation   string    `json:"found_location"`
	Category        string    `json:"category"`
	Similarity      float64   `json:"similarity"`
	LocationOverlap bool      `json:"location_overlap"`
	DateDiffDays    int       `json:"date_diff_days"`
}
