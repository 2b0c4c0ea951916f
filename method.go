package switchback

import "strings"

// A Method is an HTTP verb switchback routes requests for.
//
// Requests arriving with any other verb are not a routing error;
// they simply never match and resolve as not found.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// NewMethod casts val into a Method, upper-casing it first.
//
// NewMethod does not validate val; use Valid for that.
func NewMethod(val string) Method { return Method(strings.ToUpper(val)) }

func (m Method) String() string { return string(m) }

func (m Method) Valid() error {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return nil
	default:
		return ErrNotValid
	}
}

// AllMethods returns every Method switchback supports, in a stable order.
func AllMethods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}
}
