// Package customer holds the contact and delivery details entered with an
// order. All fields are free text and every one of them may be empty; the
// formatting helpers skip absent parts instead of failing.
package customer

import "strings"

// Customer is a plain value object. Equality is structural across all
// fields.
type Customer struct {
	Salutation  string
	FirstName   string
	LastName    string
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
}

// New creates a customer from all fields at once. Any field may be empty.
func New(salutation, firstName, lastName, street, houseNumber, postalCode, city string) Customer {
	return Customer{
		Salutation:  salutation,
		FirstName:   firstName,
		LastName:    lastName,
		Street:      street,
		HouseNumber: houseNumber,
		PostalCode:  postalCode,
		City:        city,
	}
}

// Equal reports structural equality across all fields.
func (c Customer) Equal(other Customer) bool {
	return c == other
}

// DisplayName joins salutation, first name and last name with single
// spaces, skipping empty parts. An all-empty customer yields "".
func (c Customer) DisplayName() string {
	return joinPresent(c.Salutation, c.FirstName, c.LastName)
}

// FormattedAddress renders the delivery address on two lines: street and
// house number, then postal code and city. Empty parts are skipped and an
// all-empty line is dropped entirely.
func (c Customer) FormattedAddress() string {
	lines := make([]string, 0, 2)
	if l := joinPresent(c.Street, c.HouseNumber); l != "" {
		lines = append(lines, l)
	}
	if l := joinPresent(c.PostalCode, c.City); l != "" {
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n")
}

// String renders name and address on a single line for logs.
func (c Customer) String() string {
	name := c.DisplayName()
	addr := strings.ReplaceAll(c.FormattedAddress(), "\n", ", ")
	switch {
	case name == "":
		return addr
	case addr == "":
		return name
	}
	return name + " - " + addr
}

// joinPresent joins the non-empty parts with single spaces.
func joinPresent(parts ...string) string {
	present := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, strings.TrimSpace(p))
		}
	}
	return strings.Join(present, " ")
}
