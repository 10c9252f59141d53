package models

import "strconv"

// FormatBDT renders a taka amount with the currency sign and comma
// grouping, e.g. 5000000 -> ৳5,000,000
func FormatBDT(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if neg {
		return "-৳" + string(out)
	}
	return "৳" + string(out)
}
