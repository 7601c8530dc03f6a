// Unexported conversion functions for English number-to-words conversion.
package numtext

import "strings"

const growConvert = 64 // estimated bytes for a full cardinal conversion

// convert converts an int64 to English cardinal text.
// Returns "" if abs(n) exceeds maxAbs.
func convert(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n == 0 {
		return wordZero
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var b strings.Builder
	b.Grow(growConvert)

	if negative {
		b.WriteString(wordNegative)
	}

	for _, mag := range magnitudes {
		count := n / mag.value
		if count > 0 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			writeGroup(&b, count)
			b.WriteByte(' ')
			b.WriteString(mag.word)
			n %= mag.value
		}
	}

	if n > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(&b, n)
	}

	return b.String()
}

// writeGroup writes a number in [1, 999] as English text into b.
// Callers must ensure n > 0.
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	if h > 0 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
	}

	r := n % hundred
	if r == 0 {
		return
	}
	if h > 0 {
		b.WriteByte(' ')
	}

	if r < 10 {
		b.WriteString(ones[r])
		return
	}
	if r < 20 {
		b.WriteString(teens[r-10])
		return
	}

	t := r / 10
	o := r % 10
	b.WriteString(tens[t])
	if o > 0 {
		b.WriteByte('-')
		b.WriteString(ones[o])
	}
}
