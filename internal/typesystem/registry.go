package typesystem

// ArrayInfo records the element type and inclusive bounds of an ARRAY
// declaration (spec.md §3.3 "optional array indices", made concrete in
// SPEC_FULL.md §3.2).
type ArrayInfo struct {
	ElemType DeclaredType
	Low      int64
	High     int64
}

// TypeRegistry maps a normalized name to its DeclaredType, immutable
// after initialization (spec.md §3.1).
type TypeRegistry struct {
	types   map[string]DeclaredType
	fbKinds map[string]FBKind
	arrays  map[string]ArrayInfo
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make(map[string]DeclaredType),
		fbKinds: make(map[string]FBKind),
		arrays:  make(map[string]ArrayInfo),
	}
}

func (r *TypeRegistry) Set(name string, t DeclaredType) {
	r.types[Normalize(name)] = t
}

func (r *TypeRegistry) Get(name string) DeclaredType {
	if t, ok := r.types[Normalize(name)]; ok {
		return t
	}
	return Unknown
}

// SetFBKind records the declared function-block kind for an instance,
// consulted by fbcore before falling back to signature dispatch.
func (r *TypeRegistry) SetFBKind(name string, k FBKind) {
	r.fbKinds[Normalize(name)] = k
}

func (r *TypeRegistry) FBKind(name string) FBKind {
	if k, ok := r.fbKinds[Normalize(name)]; ok {
		return k
	}
	return FBUnknown
}

func (r *TypeRegistry) SetArrayInfo(name string, info ArrayInfo) {
	r.arrays[Normalize(name)] = info
}

func (r *TypeRegistry) ArrayInfo(name string) (ArrayInfo, bool) {
	info, ok := r.arrays[Normalize(name)]
	return info, ok
}

// ConstantRegistry is the set of names declared with the CONSTANT
// qualifier; assignments to such names are silently rejected (with a
// warning) per IEC 61131-3 and spec.md §4.3.
type ConstantRegistry struct {
	names map[string]struct{}
}

func NewConstantRegistry() *ConstantRegistry {
	return &ConstantRegistry{names: make(map[string]struct{})}
}

func (r *ConstantRegistry) Add(name string) {
	r.names[Normalize(name)] = struct{}{}
}

func (r *ConstantRegistry) Contains(name string) bool {
	_, ok := r.names[Normalize(name)]
	return ok
}
