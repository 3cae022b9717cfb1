package uboot

import (
	"strings"

	"github.com/nanovms/genboot/types"
	"github.com/nanovms/genboot/util/slice"
)

const noColors = "none"

// xenBootargs joins the xen command line with the LLC coloring options.
// Any colors list turns coloring on; its first entry is xen's own range
// unless it is "none".
func xenBootargs(xen types.Xen) string {
	var parts []string
	if xen.Bootargs != "" {
		parts = append(parts, xen.Bootargs)
	}

	if len(xen.Colors) > 0 {
		parts = append(parts, "llc-coloring=on")
		if xen.Colors[0] != noColors {
			parts = append(parts, "xen-llc-colors="+xen.Colors[0])
		}
	}
	return strings.Join(parts, " ")
}

// domainColors picks the first range after xen's entry that is not "none".
// Every domain gets the same range.
func domainColors(colors []string) (string, bool) {
	return slice.FirstFrom(colors, 1, noColors)
}
