// Word tables for English number-to-words conversion.
package numtext

const (
	maxAbs  int64 = 999_999_999_999_999 // spec §4.8: "at least 10^12"
	hundred int64 = 100

	wordNegative = "minus"
	wordHundred  = "hundred"
	wordZero     = "zero"
)

var ones = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// teens is indexed by the units digit of 10-19; index 0-9 hold 10-19.
var teens = [10]string{
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by the tens digit (2-9); indices 0-1 are unused (handled
// by ones/teens).
var tens = [10]string{
	"", "",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest. hundred is
// handled separately within group conversion and is not listed here.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000, word: "trillion"},
	{value: 1_000_000_000, word: "billion"},
	{value: 1_000_000, word: "million"},
	{value: 1_000, word: "thousand"},
}
