package uboot

import (
	"errors"
	"testing"

	"github.com/nanovms/genboot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		expr string
		want uint64
	}{
		{"0x01000000", 0x01000000},
		{"0X1F", 0x1f},
		{"  0x400  ", 0x400},
		{"4096", 4096},
		{" 12 ", 12},
		{"64MiB", 64 * MiB},
		{"10KiB", 10 * KiB},
		{"2GiB", 2 * GiB},
		{"1.5MiB", 1572864},
		{"0.125GiB", 128 * MiB},
		{"1 KiB", 1024},
		{"0.3KiB", 307},
	}

	for _, tt := range tests {
		got, err := ParseExpr(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}

func TestParseExprRejectsMalformedNumerals(t *testing.T) {
	for _, expr := range []string{"", "0x", "0xZZ", "12MB", "abcKiB", "-1", "1.5", "ten", "-2MiB", "MiB"} {
		_, err := ParseExpr(expr)

		var formatErr *FormatError
		if assert.Error(t, err, expr) && assert.True(t, errors.As(err, &formatErr), expr) {
			assert.Equal(t, expr, formatErr.Expr)
		}
	}
}

func TestParseAddress(t *testing.T) {
	v, err := ParseAddress(types.AddressInt(0x2000))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x2000), v)

	v, err = ParseAddress(types.AddressString("64MiB"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x4000000), v)
}

func TestFormatHex(t *testing.T) {
	t.Run("integers are zero padded to 8 digits", func(t *testing.T) {
		s, err := FormatHex(types.AddressInt(0x1000000))
		require.NoError(t, err)
		assert.Equal(t, "0x01000000", s)
	})

	t.Run("hex literals are passed through", func(t *testing.T) {
		s, err := FormatHex(types.AddressString("0X1000"))
		require.NoError(t, err)
		assert.Equal(t, "0X1000", s)
	})

	t.Run("decimal and suffixed strings are rendered", func(t *testing.T) {
		s, err := FormatHex(types.AddressString("16MiB"))
		require.NoError(t, err)
		assert.Equal(t, "0x01000000", s)
	})

	t.Run("malformed hex literals are rejected", func(t *testing.T) {
		_, err := FormatHex(types.AddressString("0xnothex"))
		assert.Error(t, err)
	})

	t.Run("wide values keep every digit", func(t *testing.T) {
		assert.Equal(t, "0x100000000", Hex8(1<<32))
	})
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, expr := range []string{"0x03000000", "0x0", "1234", "0", "3MiB", "1.75GiB", "999KiB"} {
		first, err := ParseExpr(expr)
		require.NoError(t, err)

		formatted, err := FormatHex(types.AddressInt(first))
		require.NoError(t, err)

		second, err := ParseExpr(formatted)
		require.NoError(t, err)
		assert.Equal(t, first, second, expr)
	}
}
