package model

// Customer is a business record managed through the customers API.
type Customer struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Company string
}

// CustomerUpdate carries replacement values for every mutable column.
// A nil field clears the stored value.
type CustomerUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}
