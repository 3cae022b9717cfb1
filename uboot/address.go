package uboot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nanovms/genboot/types"
)

// Size units accepted as expression suffixes
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// checked in this order
var sizeSuffixes = []struct {
	suffix     string
	multiplier float64
}{
	{"KiB", KiB},
	{"MiB", MiB},
	{"GiB", GiB},
}

// ParseAddress evaluates an address-or-size expression to a byte count
func ParseAddress(a types.Address) (uint64, error) {
	if v, ok := a.Int(); ok {
		return v, nil
	}
	return ParseExpr(a.Text())
}

// ParseExpr evaluates a hex literal, a decimal numeral or a possibly
// fractional number with a KiB/MiB/GiB suffix. Suffixed values are truncated
// to whole bytes.
func ParseExpr(expr string) (uint64, error) {
	s := strings.TrimSpace(expr)

	if hasHexPrefix(s) {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, newFormatError(expr, err)
		}
		return v, nil
	}

	for _, u := range sizeSuffixes {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		number := strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
		f, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0, newFormatError(expr, err)
		}
		bytes := f * u.multiplier
		if math.IsNaN(bytes) || bytes < 0 || bytes >= math.MaxUint64 {
			return 0, newFormatError(expr, fmt.Errorf("%s out of range", number))
		}
		return uint64(bytes), nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, newFormatError(expr, err)
	}
	return v, nil
}

// FormatHex renders an address as a 0x prefixed, 8 digit lowercase literal.
// Addresses written as hex literals in the configuration are returned as
// written, after checking they parse.
func FormatHex(a types.Address) (string, error) {
	if _, ok := a.Int(); !ok && hasHexPrefix(a.Text()) {
		if _, err := ParseExpr(a.Text()); err != nil {
			return "", err
		}
		return a.Text(), nil
	}

	v, err := ParseAddress(a)
	if err != nil {
		return "", err
	}
	return Hex8(v), nil
}

// Hex8 renders v as 0x followed by at least 8 lowercase hex digits
func Hex8(v uint64) string {
	return fmt.Sprintf("0x%08x", v)
}

// Hex renders v as 0x followed by lowercase hex digits without padding
func Hex(v uint64) string {
	return fmt.Sprintf("0x%x", v)
}

func hasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
