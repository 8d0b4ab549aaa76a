package types

import "strings"

// Address is a postal address captured on seller profiles and delivery
// orders.
type Address struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

// Validate reports whether the required components are present.
func (a Address) Validate() error {
	if strings.TrimSpace(a.Line1) == "" {
		return errMissing("line1")
	}
	if strings.TrimSpace(a.City) == "" {
		return errMissing("city")
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		return errMissing("postal_code")
	}
	return nil
}

type addressError string

func (e addressError) Error() string {
	return "address: missing " + string(e)
}

func errMissing(field string) error {
	return addressError(field)
}
