package request

type MoveCardRequest struct {
	Status  string `json:"status" binding:"required"`
	LeadID  string `json:"lead_id" binding:"required"`
	ToIndex *int   `json:"to_index" binding:"required"`
}

type UpdateSequenceSettingsRequest struct {
	Prefix string `json:"prefix" binding:"required"`
}
