package uboot

// Region is the memory an artifact occupies once loaded
type Region struct {
	Name  string
	File  string
	Start uint64
	Size  uint64
}

// End returns the first address past the region
func (r Region) End() uint64 {
	return r.Start + r.Size
}

// Overlaps reports whether r and o share at least one byte
func (r Region) Overlaps(o Region) bool {
	return r.Start < o.End() && o.Start < r.End()
}

// Layout returns the region of every artifact the script loads, in load
// order. Overlapping regions are reported, not moved.
func (c *Compiler) Layout() ([]Region, error) {
	xenAddr, err := formatField("xen.addr", c.config.Xen.Addr)
	if err != nil {
		return nil, err
	}
	dtAddr, err := formatField("dt.addr", c.config.DT.Addr)
	if err != nil {
		return nil, err
	}

	loads, err := c.loads(xenAddr, dtAddr, c.config.BootDomains())
	if err != nil {
		return nil, err
	}

	regions := make([]Region, 0, len(loads))
	for _, l := range loads {
		start, err := ParseExpr(l.addrText)
		if err != nil {
			return nil, transformError(l.field, err)
		}
		size, err := c.sizes.Size(l.file)
		if err != nil {
			return nil, transformError(l.field, err)
		}
		regions = append(regions, Region{Name: l.name, File: l.file, Start: start, Size: size})
	}
	return regions, nil
}

// Overlapping returns, for each region index that overlaps another region,
// the indexes it overlaps with.
func Overlapping(regions []Region) map[int][]int {
	overlaps := map[int][]int{}
	for i := range regions {
		for j := range regions {
			if i != j && regions[i].Overlaps(regions[j]) {
				overlaps[i] = append(overlaps[i], j)
			}
		}
	}
	return overlaps
}
