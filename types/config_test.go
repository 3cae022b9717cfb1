package types_test

import (
	"testing"

	"github.com/nanovms/genboot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoDomains = `
media:
  type: usb
  number: "0:1"
xen:
  file: xen
  addr: 0x01000000
  colors: [none, "2-5"]
dt:
  file: board.dtb
domains:
  zeta:
    kernel: {file: zeta.bin, addr: "0x08000000", bootargs: console=hvc0}
    params: {cpus: 2, memory: 128MiB, vpl011: true}
  alpha:
    kernel: {file: alpha.bin}
    ramdisk: {file: alpha.cpio}
`

func TestParseConfig(t *testing.T) {
	c, err := types.ParseConfig([]byte(twoDomains))
	require.NoError(t, err)

	assert.Equal(t, types.Media{Type: "usb", Number: "0:1"}, c.Media)
	assert.Equal(t, []string{"none", "2-5"}, c.Xen.Colors)
	assert.Equal(t, types.AddressInt(0x01000000), c.Xen.Addr)
	assert.Equal(t, types.AddressString("0x02000000"), c.DT.Addr)

	assert.Equal(t, []string{"zeta", "alpha"}, c.Domains.Names())

	zeta, ok := c.Domains.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, "0x08000000", zeta.Kernel.Addr.Text())
	assert.Equal(t, "console=hvc0", zeta.Kernel.Bootargs)
	assert.Equal(t, types.Params{CPUs: 2, Memory: types.AddressString("128MiB"), Vpl011: true}, zeta.Params)

	alpha, ok := c.Domains.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, types.AddressString("0x03000000"), alpha.Kernel.Addr)
	assert.Equal(t, types.AddressString("0x04000000"), alpha.DT.Addr)
	assert.Equal(t, types.AddressString("0x05000000"), alpha.Ramdisk.Addr)
	assert.Equal(t, "", alpha.DT.File)
	assert.Equal(t, 1, alpha.Params.CPUs)
	assert.Equal(t, "64MiB", alpha.Params.Memory.Text())
	assert.False(t, alpha.Params.Vpl011)
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := types.ParseConfig([]byte("xen: {file: xen}"))
	require.NoError(t, err)

	assert.Equal(t, "mmc", c.Media.Type)
	assert.Equal(t, "0", c.Media.Number)
	assert.Nil(t, c.Xen.BootOnly)
	assert.Empty(t, c.Domains.Names())
	assert.Equal(t, "0x02000000", c.DT.Addr.Text())
}

func TestParseConfigErrors(t *testing.T) {
	_, err := types.ParseConfig([]byte(""))
	assert.Equal(t, types.ErrConfigEmpty, err)

	_, err = types.ParseConfig([]byte("# only a comment\n"))
	assert.Equal(t, types.ErrConfigEmpty, err)

	_, err = types.ParseConfig([]byte("xen: [unclosed"))
	assert.Error(t, err)

	_, err = types.ParseConfig([]byte("- a\n- b\n"))
	assert.Error(t, err)

	_, err = types.ParseConfig([]byte("domains: {a: {params: {cpus: -1}}}"))
	assert.EqualError(t, err, "invalid configuration: domain a: cpus must be at least 1, got -1")

	_, err = types.ParseConfig([]byte("xen: {addr: -16}"))
	assert.Error(t, err)
}

func TestParseConfigDomainKeys(t *testing.T) {
	c, err := types.ParseConfig([]byte(`
domains:
  1.0:
    kernel: {file: k1}
  7: {}
  guest:
    kernel: {file: k2, addr: "0x03000000"}
    dt: {addr: 0x04000000}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "7", "guest"}, c.Domains.Names())

	first, ok := c.Domains.Get("1")
	require.True(t, ok)
	assert.Equal(t, "k1", first.Kernel.File)

	guest, ok := c.Domains.Get("guest")
	require.True(t, ok)
	assert.Equal(t, "0x03000000", guest.Kernel.Addr.Text())
	v, isInt := guest.DT.Addr.Int()
	assert.True(t, isInt)
	assert.Equal(t, uint64(0x04000000), v)

	_, err = types.ParseConfig([]byte("domains: {a: {kernel: {addr: -1}}}"))
	assert.ErrorContains(t, err, "domain a")
}

func TestBootDomains(t *testing.T) {
	c, err := types.ParseConfig([]byte(twoDomains))
	require.NoError(t, err)

	t.Run("document order without bootonly", func(t *testing.T) {
		boot := c.BootDomains()
		require.Len(t, boot, 2)
		assert.Equal(t, 1, boot[0].Ordinal)
		assert.Equal(t, "zeta", boot[0].Name)
		assert.Equal(t, 2, boot[1].Ordinal)
		assert.Equal(t, "alpha", boot[1].Name)
	})

	t.Run("unknown names are skipped without gaps", func(t *testing.T) {
		c.Xen.BootOnly = []string{"missing", "alpha", "nope", "zeta", "alpha"}

		var got []string
		for _, d := range c.BootDomains() {
			got = append(got, d.Name)
			assert.Equal(t, len(got), d.Ordinal)
		}
		assert.Equal(t, []string{"alpha", "zeta", "alpha"}, got)
	})
}

func TestAddress(t *testing.T) {
	var unset types.Address
	assert.Equal(t, types.Address{}, unset)
	assert.Equal(t, "0x10", unset.Or("0x10").Text())

	set := types.AddressInt(42)
	assert.Equal(t, set, set.Or("0x10"))
	assert.Equal(t, "42", set.String())

	v, ok := set.Int()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)

	_, ok = types.AddressString("1MiB").Int()
	assert.False(t, ok)
}

func TestDomainsSet(t *testing.T) {
	var d types.Domains
	d.Set("b", types.Domain{})
	d.Set("a", types.Domain{})
	d.Set("b", types.Domain{Params: types.Params{CPUs: 3}})

	assert.Equal(t, []string{"b", "a"}, d.Names())
	b, _ := d.Get("b")
	assert.Equal(t, 3, b.Params.CPUs)
}
