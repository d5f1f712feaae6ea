package dto

import "github.com/polkiloo/customerhub/internal/domain/model"

// UpdateCustomerRequest replaces every customer field. Omitted fields are cleared.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// ToModel converts request into domain update.
func (r UpdateCustomerRequest) ToModel() model.CustomerUpdate {
	return model.CustomerUpdate{Name: r.Name, Email: r.Email, Phone: r.Phone, Company: r.Company}
}

type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type CustomersResponse struct {
	Success   bool               `json:"success"`
	Customers []CustomerResponse `json:"customers"`
}

type CustomerEnvelope struct {
	Success  bool             `json:"success"`
	Customer CustomerResponse `json:"customer"`
}

// NewCustomerResponse maps domain customer to its JSON representation.
func NewCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Company: c.Company}
}

// NewCustomersResponse builds a successful list envelope. Customers is never null.
func NewCustomersResponse(customers []model.Customer) CustomersResponse {
	resp := CustomersResponse{Success: true, Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, NewCustomerResponse(c))
	}
	return resp
}
