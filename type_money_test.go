package networth

import "testing"

func TestMoneyString(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "GBP"), "£1,234.56"},
		{M(0, "GBP"), "£0.00"},
		{M(-42.5, "EUR"), "-€42,50"},
	}
	for _, c := range cases {
		if got := c.m.String(); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.m.AsFloat(), got, c.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(10.10, "GBP"), M(0.20, "GBP")
	if got := a.Add(b); !got.Equal(M(10.30, "GBP")) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(9.90, "GBP")) {
		t.Errorf("Sub = %v", got)
	}
	// The empty currency is weak, it takes the other operand's.
	if got := (Money{}).Add(a); got.Currency() != "GBP" {
		t.Errorf("zero value Add should adopt GBP, got %q", got.Currency())
	}
}

func TestMoneyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding GBP and USD should panic")
		}
	}()
	M(1, "GBP").Add(M(1, "USD"))
}

func TestPercent(t *testing.T) {
	if got := Percent(12.345).String(); got != "12.35%" {
		t.Errorf("String = %q", got)
	}
	if got := Percent(12.3).SignedString(); got != "+12.30%" {
		t.Errorf("SignedString = %q", got)
	}
	if !Percent(1.00001).Equal(Percent(1.00002)) {
		t.Error("Equal should tolerate sub-precision differences")
	}
}
