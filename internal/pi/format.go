package pi

import "strings"

// Format renders a π string for human reading: the "3." prefix is kept
// as-is and a single space is inserted before every 5th fractional digit.
//
//	Format("3.1415926535") == "3.14159 26535"
//
// Purely derived display data; the result is never parsed back.
func Format(piStr string) string {
	if len(piStr) <= 2 {
		return piStr
	}

	var b strings.Builder
	b.Grow(len(piStr) + (len(piStr)-2)/5)
	b.WriteString(piStr[:2])

	for i := 2; i < len(piStr); i++ {
		if i > 2 && (i-2)%5 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(piStr[i])
	}
	return b.String()
}
