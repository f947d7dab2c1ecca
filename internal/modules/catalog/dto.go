package catalog

type CreateServiceRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" binding:"required,gt=0"`
	DurationEstimate string  `json:"duration_estimate"`
}

type UpdateServiceRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	DurationEstimate *string  `json:"duration_estimate,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

type CreatePropertyRequest struct {
	Address  string  `json:"address" binding:"required"`
	Surface  float64 `json:"surface"`
	NumRooms int     `json:"num_rooms"`
	// OwnerID is honored for admins only; clients always own what they
	// create.
	OwnerID int64 `json:"owner_id"`
}

type UpdatePropertyRequest struct {
	Address  *string  `json:"address,omitempty"`
	Surface  *float64 `json:"surface,omitempty"`
	NumRooms *int     `json:"num_rooms,omitempty"`
}

type CreateProviderRequest struct {
	Name         string `json:"name" binding:"required"`
	Speciality   string `json:"speciality"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type UpdateProviderRequest struct {
	Name         *string `json:"name,omitempty"`
	Speciality   *string `json:"speciality,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
