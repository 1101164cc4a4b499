package token

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{Token{Kind: EOF}, "end of input"},
		{Token{Kind: LBrace}, "'{'"},
		{Token{Kind: Null}, "null"},
		{Token{Kind: True}, "true"},
		{Token{Kind: String, Str: "a\nb"}, `String("a\nb")`},
		{Token{Kind: Number, Num: 42}, "Number(42)"},
		{Token{Kind: Number, Num: 1.5}, "Number(1.5)"},
		{Token{Kind: Number, Num: -2.5e-10}, "Number(-2.5e-10)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.expected {
			t.Errorf("expected %s, got %s", tt.expected, got)
		}
	}
}

func TestPosString(t *testing.T) {
	p := Pos{Line: 3, Col: 0}
	if p.String() != "L3,C0" {
		t.Errorf("unexpected position string: %s", p)
	}
}

func TestCharPredicates(t *testing.T) {
	if !IsDigit(byte('7')) || IsDigit(byte('x')) {
		t.Error("IsDigit misclassifies")
	}
	if !IsAlpha('z') || !IsAlpha('_') || IsAlpha('1') {
		t.Error("IsAlpha misclassifies")
	}
	if !IsAlnum(byte('a')) || !IsAlnum(byte('0')) || IsAlnum(byte('-')) {
		t.Error("IsAlnum misclassifies")
	}
	if !IsCtrl(byte(0)) || !IsCtrl('\t') || IsCtrl(' ') {
		t.Error("IsCtrl misclassifies")
	}
}
