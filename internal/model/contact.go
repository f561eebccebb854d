package model

type Contact struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type CreateContactRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Phone     string `json:"phone" binding:"max=100"`
}

type UpdateContactRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Phone     string `json:"phone" binding:"max=100"`
}

// ContactFilter narrows a search; empty fields match everything. Name is
// matched against first and last name, all matches are case-insensitive
// substring matches.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c *Contact) Response() ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
