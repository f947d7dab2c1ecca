package request

type CreateRequestDTO struct {
	ServiceID     int64  `json:"service_id" binding:"required"`
	PropertyID    *int64 `json:"property_id"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	Notes         string `json:"notes"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required"`
	// Force lets an admin override the transition table, for repairing
	// rows that got into a bad state. The target still has to be a real
	// status.
	Force bool `json:"force"`
}
