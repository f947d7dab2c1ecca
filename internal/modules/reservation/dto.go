package reservation

// CreateReservationDTO is the staff creation form. ServiceLabel is free
// text for work outside the catalog; it is kept in the notes when no
// service_id is given.
type CreateReservationDTO struct {
	UserID       int64  `json:"user_id" binding:"required"`
	ServiceID    *int64 `json:"service_id"`
	ServiceLabel string `json:"service_label"`
	PropertyID   *int64 `json:"property_id"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time"`
	Notes        string `json:"notes"`
}

type AssignProviderDTO struct {
	ProviderID int64 `json:"provider_id" binding:"required"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
