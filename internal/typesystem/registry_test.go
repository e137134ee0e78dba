package typesystem

import "testing"

func TestTypeRegistrySetGet(t *testing.T) {
	r := NewTypeRegistry()
	r.Set("Count", Int)
	if got := r.Get("count"); got != Int {
		t.Errorf("Get(count) = %v, want Int (case-insensitive)", got)
	}
	if got := r.Get("Undeclared"); got != Unknown {
		t.Errorf("Get(Undeclared) = %v, want Unknown", got)
	}
}

func TestTypeRegistryArrayInfo(t *testing.T) {
	r := NewTypeRegistry()
	r.SetArrayInfo("Buf", ArrayInfo{ElemType: Real, Low: 1, High: 10})
	info, ok := r.ArrayInfo("BUF")
	if !ok {
		t.Fatal("ArrayInfo(BUF) missing after SetArrayInfo(Buf, ...)")
	}
	if info.ElemType != Real || info.Low != 1 || info.High != 10 {
		t.Errorf("ArrayInfo = %+v, want {Real 1 10}", info)
	}
}

func TestConstantRegistry(t *testing.T) {
	r := NewConstantRegistry()
	r.Add("MaxRetries")
	if !r.Contains("maxretries") {
		t.Error("Contains(maxretries) = false, want true (case-insensitive)")
	}
	if r.Contains("Other") {
		t.Error("Contains(Other) = true, want false")
	}
}
