package constants

// Version of genboot
const Version = "0.3.0"

// Boot media defaults
const (
	// DefaultMediaType is the u-boot interface fatload reads from
	DefaultMediaType = "mmc"
	// DefaultMediaNumber is the device index on DefaultMediaType
	DefaultMediaNumber = "0"
)

// Default load addresses. Domains all share the same defaults, nothing is
// relocated to avoid overlaps.
const (
	DefaultXenAddr        = "0x01000000"
	DefaultDeviceTreeAddr = "0x02000000"
	DefaultKernelAddr     = "0x03000000"
	DefaultDomainDTAddr   = "0x04000000"
	DefaultRamdiskAddr    = "0x05000000"
)

// Domain parameter defaults
const (
	DefaultCPUs   = 1
	DefaultMemory = "64MiB"
)

// DefaultArtifactSize is used for artifacts that are not named or can not be
// found in the artifact directory.
const DefaultArtifactSize = 0x100000

// FdtResize is the extra space requested for the working device tree.
const FdtResize = 2048
