// Package builtins implements the ST built-in function library named
// in spec.md §4.2: numeric, selection, string, and type-conversion
// functions, resolved by upper-cased name.
//
// Grounded on CWBudde-go-dws's internal/interp/builtins package: a
// name -> Func registry built via per-file Register calls in init(),
// categorized for introspection. That repo's Registry is a mutex-guarded
// struct supporting runtime registration from multiple goroutines; this
// one is a plain map populated once at package init, since the ST
// built-in set is fixed and scans are single-threaded (spec.md §5).
package builtins

import "github.com/golang-plc/stcore/internal/stvalue"

// Func is a built-in function implementation.
type Func func(args []stvalue.Value) stvalue.Value

// Category groups built-ins for introspection/documentation, mirroring
// the teacher's FunctionInfo.Category field.
type Category string

const (
	CategoryNumeric    Category = "numeric"
	CategorySelection  Category = "selection"
	CategoryString     Category = "string"
	CategoryConversion Category = "conversion"
)

type entry struct {
	fn       Func
	category Category
}

var registry = make(map[string]entry)

// Register adds a built-in under name (matched case-insensitively by
// the evaluator, which upper-cases before calling Lookup).
func Register(name string, category Category, fn Func) {
	registry[name] = entry{fn: fn, category: category}
}

// Lookup resolves an already-normalized (upper-cased) name.
func Lookup(name string) (Func, bool) {
	e, ok := registry[name]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// Names returns every registered built-in name in a given category,
// useful for documentation/CLI introspection.
func Names(category Category) []string {
	var names []string
	for name, e := range registry {
		if e.category == category {
			names = append(names, name)
		}
	}
	return names
}
