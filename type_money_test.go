package portfolio

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{M(5634.20), "$5,634.20"},
		{M(80000), "$80,000.00"},
		{M(0.05), "$0.05"},
		{M(-523.80), "-$523.80"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(1634.20).SignedString(); got != "+$1,634.20" {
		t.Errorf("got %q, want +$1,634.20", got)
	}
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("got %q, want -", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	avg := M(5000).Div(Q(0.0625))
	if !avg.Equal(M(80000)) {
		t.Errorf("5000/0.0625 = %s, want $80,000.00", avg)
	}

	mv := M(112684).Mul(Q(0.05))
	if !mv.Equal(M(5634.20)) {
		t.Errorf("112684*0.05 = %s, want $5,634.20", mv)
	}

	pct := M(1634.20).PercentOf(M(4000))
	if !pct.Equal(Percent(40.855)) {
		t.Errorf("1634.20 of 4000 = %s, want 40.86%%", pct)
	}
}

func TestPercent_Strings(t *testing.T) {
	if got := Percent(12.5).String(); got != "12.50%" {
		t.Errorf("got %q, want 12.50%%", got)
	}
	if got := Percent(12.5).SignedString(); got != "+12.50%" {
		t.Errorf("got %q, want +12.50%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("got %q, want -", got)
	}
}

func TestPrice_Optionality(t *testing.T) {
	if Unavailable().Available() {
		t.Error("Unavailable() reports available")
	}
	if got := Unavailable().String(); got != "N/A" {
		t.Errorf("got %q, want N/A", got)
	}
	p := PriceOf(M(202.38))
	if !p.Available() || p.String() != "$202.38" {
		t.Errorf("got available=%v %q, want $202.38", p.Available(), p)
	}
}
