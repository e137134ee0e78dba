package builtins

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/golang-plc/stcore/internal/stvalue"
)

var defaultCollator = collate.New(language.Und)

// STRCMP is a supplemental built-in (SPEC_FULL.md §5/§6) performing a
// locale-aware three-way string compare, alongside the byte-wise
// lexicographic `<`/`>` operators spec.md §4.2 mandates for string
// comparisons. Returns -1, 0, or 1.
func init() {
	Register("STRCMP", CategoryString, func(a []stvalue.Value) stvalue.Value {
		x := stvalue.ToString(arg(a, 0))
		y := stvalue.ToString(arg(a, 1))
		return stvalue.NewInt(int64(defaultCollator.CompareString(x, y)))
	})
}
