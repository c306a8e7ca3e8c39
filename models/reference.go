package models

// Reference is a customer contact ("contatto").
type Reference struct {
	ID                  ID     `json:"id"`
	CustomerID          ID     `json:"customerId" validate:"required"`
	CustomerDescription string `json:"customerDescription"`
	FirstName           string `json:"firstname" validate:"required_without=LastName" label:"Nome"`
	LastName            string `json:"lastname" validate:"required_without=FirstName" label:"Cognome"`
	Role                string `json:"role"`
	Email               string `json:"email" validate:"omitempty,legacyemail" label:"Email"`
	Description         string `json:"description"`
	Telephone           string `json:"telephone" validate:"omitempty,number" label:"Telefono"`
	MobilePhone         string `json:"mobilephone" validate:"omitempty,number,mobile" label:"Cellulare"`
	Notes               string `json:"notes"`
}

// FullName joins first and last name, skipping empty parts.
func (r Reference) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}
