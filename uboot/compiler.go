package uboot

import (
	"github.com/go-errors/errors"
	"github.com/nanovms/genboot/constants"
	"github.com/nanovms/genboot/types"
)

const chosen = "/chosen"

// Compiler turns a boot configuration into a u-boot script that loads xen,
// its device tree and every domain artifact, then describes the domains
// under /chosen.
type Compiler struct {
	config *types.Config
	sizes  SizeResolver
}

// NewCompiler returns a Compiler for config. Defaults must already be
// applied to config.
func NewCompiler(config *types.Config, sizes SizeResolver) *Compiler {
	return &Compiler{config: config, sizes: sizes}
}

// Compile is a shorthand for NewCompiler(config, sizes).Compile()
func Compile(config *types.Config, sizes SizeResolver) (*Script, error) {
	return NewCompiler(config, sizes).Compile()
}

// Compile generates the whole script. On error no script is returned.
func (c *Compiler) Compile() (*Script, error) {
	xenAddr, err := formatField("xen.addr", c.config.Xen.Addr)
	if err != nil {
		return nil, err
	}
	dtAddr, err := formatField("dt.addr", c.config.DT.Addr)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	domains := c.config.BootDomains()

	loads, err := c.loads(xenAddr, dtAddr, domains)
	if err != nil {
		return nil, err
	}
	for _, l := range loads {
		script.add(fatload{
			iface: c.config.Media.Type,
			dev:   c.config.Media.Number,
			addr:  l.addrText,
			file:  l.file,
		})
	}

	c.prepareDeviceTree(script, dtAddr)

	for _, d := range domains {
		if err := c.addDomain(script, d); err != nil {
			return nil, err
		}
	}

	script.add(fdtPrint{path: chosen}, booti{kernel: xenAddr, fdt: dtAddr})
	return script, nil
}

// load is an artifact copied into memory by fatload
type load struct {
	name     string
	field    string
	file     string
	addrText string
}

// loads lists the artifacts to load in load order. Addresses are checked for
// every artifact, named or not.
func (c *Compiler) loads(xenAddr, dtAddr string, domains []types.BootDomain) ([]load, error) {
	var loads []load

	if c.config.Xen.File != "" {
		loads = append(loads, load{name: "xen", field: "xen.file", file: c.config.Xen.File, addrText: xenAddr})
	}
	if c.config.DT.File != "" {
		loads = append(loads, load{name: "dt", field: "dt.file", file: c.config.DT.File, addrText: dtAddr})
	}

	for _, d := range domains {
		for _, a := range domainArtifacts(d) {
			addr, err := formatField(a.field+".addr", a.addr)
			if err != nil {
				return nil, err
			}
			if a.file == "" {
				continue
			}
			loads = append(loads, load{name: d.Name + " " + a.kind, field: a.field + ".file", file: a.file, addrText: addr})
		}
	}
	return loads, nil
}

func (c *Compiler) prepareDeviceTree(script *Script, dtAddr string) {
	script.add(fdtAddr{addr: dtAddr}, fdtResize{size: constants.FdtResize})
	script.blank(1)

	if path := c.config.Xen.StdoutPath; path != "" {
		script.add(fdtSet{path: chosen, prop: "stdout-path", value: quote(path)})
	}
	if args := xenBootargs(c.config.Xen); args != "" {
		script.add(fdtSet{path: chosen, prop: "xen,xen-bootargs", value: quote(args)})
	}
	script.blank(2)
}

func formatField(field string, a types.Address) (string, error) {
	s, err := FormatHex(a)
	if err != nil {
		return "", transformError(field, err)
	}
	return s, nil
}

func parseField(field string, a types.Address) (uint64, error) {
	v, err := ParseAddress(a)
	if err != nil {
		return 0, transformError(field, err)
	}
	return v, nil
}

func transformError(field string, err error) error {
	return errors.Wrap(newTransformError(field, err), 1)
}
