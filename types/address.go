package types

import (
	"fmt"
	"strconv"
)

// Address is an address-or-size expression as written in the configuration:
// a YAML integer, a 0x prefixed hex string, a decimal string or a number
// followed by KiB, MiB or GiB. It is kept unevaluated so the original
// spelling of hex literals survives until the script is rendered.
type Address struct {
	text  string
	value uint64
	isInt bool
	set   bool
}

// AddressString returns an Address holding an expression string
func AddressString(s string) Address {
	return Address{text: s, set: true}
}

// AddressInt returns an Address holding a plain integer
func AddressInt(v uint64) Address {
	return Address{value: v, isInt: true, set: true}
}

// Int returns the value when the address was given as an integer
func (a Address) Int() (uint64, bool) {
	return a.value, a.isInt
}

// Text returns the expression string, empty for integers
func (a Address) Text() string {
	return a.text
}

// Or returns a when set, otherwise an Address holding def
func (a Address) Or(def string) Address {
	if a.set {
		return a
	}
	return AddressString(def)
}

func (a Address) String() string {
	if a.isInt {
		return strconv.FormatUint(a.value, 10)
	}
	return a.text
}

// UnmarshalYAML accepts integer and string scalars. Floats are kept as text
// and rejected when the expression is evaluated.
func (a *Address) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case int:
		if v < 0 {
			return fmt.Errorf("negative address or size %d", v)
		}
		*a = AddressInt(uint64(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("negative address or size %d", v)
		}
		*a = AddressInt(uint64(v))
	case uint64:
		*a = AddressInt(v)
	case float64:
		*a = AddressString(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		*a = AddressString(v)
	case nil:
		*a = Address{}
	default:
		return fmt.Errorf("invalid address or size %v", v)
	}
	return nil
}
