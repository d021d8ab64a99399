package dto

// UpdateUserRequest represents the payload to update a user profile.
// Pointer fields distinguish "absent" from "set to empty".
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	CPF       *string `json:"cpf"`
	BirthDate *string `json:"birthDate"`
	Phone     *string `json:"phone"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Street    *string `json:"street"`
	Avenue    *string `json:"avenue"`
	Lot       *string `json:"lot"`
	Number    *string `json:"number"`
	Password  *string `json:"password"`
	Specialty *string `json:"specialty"`
}
