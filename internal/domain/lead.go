package domain

import "time"

// Lead is an anonymous prospect inquiry captured from the public contact
// form. Leads are write-once: they never transition state and carry no
// foreign key to users.
type Lead struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	PropertyType    string    `json:"type_bien"`
	Surface         string    `json:"surface"`
	ServiceInterest string    `json:"service_interest"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}
