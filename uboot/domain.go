package uboot

import (
	"fmt"
	"strconv"

	"github.com/nanovms/genboot/types"
)

// artifact is a domain binary as configured
type artifact struct {
	kind  string
	field string
	file  string
	addr  types.Address
}

// domainArtifacts returns the kernel, device tree and ramdisk of d
func domainArtifacts(d types.BootDomain) []artifact {
	prefix := "domains." + d.Name
	return []artifact{
		{kind: "kernel", field: prefix + ".kernel", file: d.Kernel.File, addr: d.Kernel.Addr},
		{kind: "dt", field: prefix + ".dt", file: d.DT.File, addr: d.DT.Addr},
		{kind: "ramdisk", field: prefix + ".ramdisk", file: d.Ramdisk.File, addr: d.Ramdisk.Addr},
	}
}

// module describes how a multiboot module node is rendered
type module struct {
	compatible string
	size       func(uint64) string
	trailing   int
}

var (
	kernelModule     = module{compatible: "multiboot,kernel", size: Hex, trailing: 1}
	deviceTreeModule = module{compatible: "multiboot,device-tree", size: decimal, trailing: 2}
	ramdiskModule    = module{compatible: "multiboot,ramdisk", size: Hex, trailing: 1}
)

func decimal(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// addDomain creates /chosen/domU<ordinal> with its kernel, device tree and
// ramdisk modules.
func (c *Compiler) addDomain(script *Script, d types.BootDomain) error {
	node := fmt.Sprintf("domU%d", d.Ordinal)
	path := chosen + "/" + node
	arts := domainArtifacts(d)

	memory, err := parseField("domains."+d.Name+".params.memory", d.Params.Memory)
	if err != nil {
		return err
	}

	script.add(
		fdtMknode{parent: chosen, name: node},
		fdtSet{path: path, prop: "compatible", value: quote("xen,domain")},
		fdtSet{path: path, prop: "cpus", value: cells(Hex(uint64(d.Params.CPUs)))},
		fdtSet{path: path, prop: `\#address-cells`, value: cells("0x1")},
		fdtSet{path: path, prop: `\#size-cells`, value: cells("0x1")},
		fdtSet{path: path, prop: "memory", value: cells("0x0", Hex(memory/KiB))},
	)
	script.blank(1)

	if d.Params.Vpl011 {
		script.add(fdtSet{path: path, prop: "vpl011"})
	}

	kernel := arts[0]
	kernelAddr, err := parseField(kernel.field+".addr", kernel.addr)
	if err != nil {
		return err
	}
	kernelPath := modulePath(path, kernelAddr)

	script.add(fdtMknode{parent: path, name: "module@" + Hex8(kernelAddr)})
	if colors, ok := domainColors(c.config.Xen.Colors); ok {
		script.add(fdtSet{path: path, prop: "llc-colors", value: quote(colors)})
	}
	if err := c.addModuleReg(script, kernelModule, kernelPath, kernelAddr, kernel); err != nil {
		return err
	}

	if d.Kernel.Bootargs != "" {
		script.add(fdtSet{path: kernelPath, prop: "bootargs", value: quote(d.Kernel.Bootargs)})
		script.blank(1)
	}

	for i, m := range []module{deviceTreeModule, ramdiskModule} {
		a := arts[i+1]
		addr, err := parseField(a.field+".addr", a.addr)
		if err != nil {
			return err
		}
		if a.file == "" {
			continue
		}
		script.add(fdtMknode{parent: path, name: "module@" + Hex8(addr)})
		if err := c.addModuleReg(script, m, modulePath(path, addr), addr, a); err != nil {
			return err
		}
	}
	return nil
}

// addModuleReg sets compatible and reg on a module node created by the caller
func (c *Compiler) addModuleReg(script *Script, m module, path string, addr uint64, a artifact) error {
	size, err := c.sizes.Size(a.file)
	if err != nil {
		return transformError(a.field+".file", err)
	}

	script.add(
		fdtSet{path: path, prop: "compatible", value: stringList(m.compatible, "multiboot,module")},
		fdtSet{path: path, prop: "reg", value: cells(Hex8(addr), m.size(size))},
	)
	script.blank(m.trailing)
	return nil
}

func modulePath(domainPath string, addr uint64) string {
	return domainPath + "/module@" + Hex8(addr)
}
