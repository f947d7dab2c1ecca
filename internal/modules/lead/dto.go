package lead

type CreateLeadRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	PropertyType    string `json:"type_bien"`
	Surface         string `json:"surface"`
	ServiceInterest string `json:"service_interest"`
	Message         string `json:"message"`
}
