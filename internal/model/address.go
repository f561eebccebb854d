package model

type Address struct {
	ID         string
	ContactID  string
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

type CreateAddressRequest struct {
	Street     string `json:"street" binding:"max=200"`
	City       string `json:"city" binding:"max=100"`
	Province   string `json:"province" binding:"max=100"`
	Country    string `json:"country" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"max=10"`
}

type UpdateAddressRequest struct {
	Street     string `json:"street" binding:"max=200"`
	City       string `json:"city" binding:"max=100"`
	Province   string `json:"province" binding:"max=100"`
	Country    string `json:"country" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"max=10"`
}

type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

func (a *Address) Response() AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
