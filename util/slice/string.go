package slice

// FirstFrom returns the first element at or after index from that is not
// equal to skip.
func FirstFrom(arr []string, from int, skip string) (string, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(arr); i++ {
		if arr[i] != skip {
			return arr[i], true
		}
	}
	return "", false
}
