package types

import (
	"fmt"

	"github.com/nanovms/genboot/constants"
)

// Config is the boot configuration of a xen dom0-less system
type Config struct {
	// Media describes where u-boot loads the artifacts from.
	Media Media `yaml:"media"`

	// Xen configures the hypervisor image and its command line.
	Xen Xen `yaml:"xen"`

	// DT is the board device tree handed to xen.
	DT DeviceTree `yaml:"dt"`

	// Domains maps domain names to their records, in document order.
	Domains Domains `yaml:"domains"`
}

// Media selects the u-boot storage interface and device
type Media struct {
	// Type is the u-boot interface name (defaults to mmc).
	Type string `yaml:"type"`

	// Number is the device index, optionally with a partition such as 0:1
	// (defaults to 0).
	Number string `yaml:"number"`
}

// Xen configures the hypervisor
type Xen struct {
	// File is the hypervisor image inside the artifact directory.
	File string `yaml:"file"`

	// Addr is the hypervisor load address (defaults to 0x01000000).
	Addr Address `yaml:"addr"`

	// Bootargs is passed verbatim to xen.
	Bootargs string `yaml:"bootargs"`

	// StdoutPath sets /chosen stdout-path when not empty.
	StdoutPath string `yaml:"stdout-path"`

	// BootOnly lists the domains to boot and their order. A nil list boots
	// every domain in document order.
	BootOnly []string `yaml:"bootonly"`

	// Colors holds LLC color ranges. The first entry is for xen itself and
	// may be "none"; the first usable entry after it is given to domains.
	Colors []string `yaml:"colors"`
}

// DeviceTree is the board device tree
type DeviceTree struct {
	File string  `yaml:"file"`
	Addr Address `yaml:"addr"`
}

// Domain is a guest started by xen without a control domain
type Domain struct {
	Kernel  Kernel   `yaml:"kernel"`
	DT      Artifact `yaml:"dt"`
	Ramdisk Artifact `yaml:"ramdisk"`
	Params  Params   `yaml:"params"`
}

// Artifact is a binary loaded into memory at Addr
type Artifact struct {
	File string  `yaml:"file"`
	Addr Address `yaml:"addr"`
}

// Kernel is the domain kernel artifact and its command line
type Kernel struct {
	File     string  `yaml:"file"`
	Addr     Address `yaml:"addr"`
	Bootargs string  `yaml:"bootargs"`
}

// Params are the domain resources
type Params struct {
	// CPUs is the number of vcpus (defaults to 1).
	CPUs int `yaml:"cpus"`

	// Memory is the domain memory size (defaults to 64MiB).
	Memory Address `yaml:"memory"`

	// Vpl011 enables the emulated pl011 console.
	Vpl011 bool `yaml:"vpl011"`
}

// Options controls diagnostics output
type Options struct {
	ShowWarnings bool
	ShowErrors   bool
	ShowDebug    bool
}

// ApplyDefaults fills every unset field with its documented default
func (c *Config) ApplyDefaults() {
	if c.Media.Type == "" {
		c.Media.Type = constants.DefaultMediaType
	}
	if c.Media.Number == "" {
		c.Media.Number = constants.DefaultMediaNumber
	}

	c.Xen.Addr = c.Xen.Addr.Or(constants.DefaultXenAddr)
	c.DT.Addr = c.DT.Addr.Or(constants.DefaultDeviceTreeAddr)

	for _, name := range c.Domains.Names() {
		d, _ := c.Domains.Get(name)
		d.applyDefaults()
		c.Domains.Set(name, d)
	}
}

func (d *Domain) applyDefaults() {
	d.Kernel.Addr = d.Kernel.Addr.Or(constants.DefaultKernelAddr)
	d.DT.Addr = d.DT.Addr.Or(constants.DefaultDomainDTAddr)
	d.Ramdisk.Addr = d.Ramdisk.Addr.Or(constants.DefaultRamdiskAddr)

	if d.Params.CPUs == 0 {
		d.Params.CPUs = constants.DefaultCPUs
	}
	d.Params.Memory = d.Params.Memory.Or(constants.DefaultMemory)
}

// Validate checks the values that can be checked without evaluating
// address expressions
func (c *Config) Validate() error {
	for _, name := range c.Domains.Names() {
		d, _ := c.Domains.Get(name)
		if d.Params.CPUs < 0 {
			return fmt.Errorf("domain %s: cpus must be at least 1, got %d", name, d.Params.CPUs)
		}
	}
	return nil
}

// BootDomain is a domain selected for boot with its 1-based ordinal
type BootDomain struct {
	Ordinal int
	Name    string
	Domain
}

// BootDomains returns the domains to boot, in boot order. Names from bootonly
// that do not exist are skipped and do not consume an ordinal.
func (c *Config) BootDomains() []BootDomain {
	names := c.Xen.BootOnly
	if names == nil {
		names = c.Domains.Names()
	}

	var selected []BootDomain
	for _, name := range names {
		d, ok := c.Domains.Get(name)
		if !ok {
			continue
		}
		selected = append(selected, BootDomain{
			Ordinal: len(selected) + 1,
			Name:    name,
			Domain:  d,
		})
	}
	return selected
}
