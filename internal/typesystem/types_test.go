package typesystem

import "testing"

func TestNormalizeIsCaseInsensitive(t *testing.T) {
	if Normalize("myVar") != Normalize("MYVAR") {
		t.Error("Normalize should fold case so myVar and MYVAR collide")
	}
}

func TestTypeForKeyword(t *testing.T) {
	cases := []struct {
		kw   string
		want DeclaredType
	}{
		{"bool", Bool},
		{"DINT", Int},
		{"Real", Real},
		{"time", Time},
		{"TON", Timer},
		{"ctu", Counter},
		{"R_TRIG", EdgeDetector},
		{"sr", Bistable},
		{"array", Array},
		{"nonsense", Unknown},
	}
	for _, c := range cases {
		if got := TypeForKeyword(c.kw); got != c.want {
			t.Errorf("TypeForKeyword(%q) = %v, want %v", c.kw, got, c.want)
		}
	}
}

func TestFBKindForKeyword(t *testing.T) {
	cases := []struct {
		kw   string
		want FBKind
	}{
		{"ton", FBTON},
		{"tof", FBTOF},
		{"tp", FBTP},
		{"ctu", FBCTU},
		{"r_trig", FBRTrig},
		{"f_trig", FBFTrig},
		{"sr", FBSR},
		{"rs", FBRS},
		{"bool", FBUnknown},
	}
	for _, c := range cases {
		if got := FBKindForKeyword(c.kw); got != c.want {
			t.Errorf("FBKindForKeyword(%q) = %v, want %v", c.kw, got, c.want)
		}
	}
}
