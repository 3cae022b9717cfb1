package uboot

import (
	"fmt"
	"strings"
)

// Line is one line of a u-boot script
type Line interface {
	String() string
}

type blank struct{}

func (blank) String() string {
	return ""
}

type fatload struct {
	iface string
	dev   string
	addr  string
	file  string
}

func (f fatload) String() string {
	return fmt.Sprintf("fatload %s %s %s %s", f.iface, f.dev, f.addr, f.file)
}

type fdtAddr struct {
	addr string
}

func (f fdtAddr) String() string {
	return fmt.Sprintf("fdt addr %s", f.addr)
}

type fdtResize struct {
	size int
}

func (f fdtResize) String() string {
	return fmt.Sprintf("fdt resize %d", f.size)
}

type fdtMknode struct {
	parent string
	name   string
}

func (f fdtMknode) String() string {
	return fmt.Sprintf("fdt mknode %s %s", f.parent, f.name)
}

// fdtSet sets a property; an empty value sets an empty (boolean) property
type fdtSet struct {
	path  string
	prop  string
	value string
}

func (f fdtSet) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("fdt set %s %s", f.path, f.prop))
	if len(f.value) > 0 {
		sb.WriteString(" " + f.value)
	}
	return sb.String()
}

type fdtPrint struct {
	path string
}

func (f fdtPrint) String() string {
	return fmt.Sprintf("fdt print %s", f.path)
}

// booti boots an arm64 Image with no initrd
type booti struct {
	kernel string
	fdt    string
}

func (b booti) String() string {
	return fmt.Sprintf("booti %s - %s", b.kernel, b.fdt)
}

func quote(s string) string {
	return `"` + s + `"`
}

// stringList renders a device tree string list property value
func stringList(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return strings.Join(quoted, " ")
}

// cells renders a device tree cell array property value
func cells(values ...string) string {
	return "<" + strings.Join(values, " ") + ">"
}
