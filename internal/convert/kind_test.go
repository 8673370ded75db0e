package convert

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind Kind
		ok   bool
	}{
		{"suite/Smoke.rxtst", KindSuite, true},
		{"Login.RXREC", KindRecording, true},
		{"modules/Login.cs", KindSource, true},
		{"Login.rxtc", "", false},
		{"README", "", false},
	}
	for _, tt := range tests {
		kind, ok := Classify(tt.path)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.path, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Login", "Login"},
		{"Empty Case", "Empty_Case"},
		{"2FA-check", "_2FA_check"},
		{"  ", "Unnamed"},
	}
	for _, tt := range tests {
		if got := Ident(tt.in); got != tt.want {
			t.Errorf("Ident(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName("rec/Login.rxrec"); got != "Login" {
		t.Errorf("BaseName = %q, want Login", got)
	}
}
