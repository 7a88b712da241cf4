package textnorm

import "testing"

func TestNormalizeDigits(t *testing.T) {
	got := Normalize("سن من ۲۸ است و ٤ سال سابقه دارم")
	want := "سن من 28 است و 4 سال سابقه دارم"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeZeroWidthJoiner(t *testing.T) {
	got := Normalize("مهارت‌های کلیدی")
	want := "مهارت های کلیدی"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  سلام \t دنیا \n ")
	want := "سلام دنیا"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"من علی رضایی ۲۸ سالمه، ۴ سال سابقه کار دارم",
		"مهارت‌های من: Python و SQL",
		"",
		"   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestContainsTokenBoundaries(t *testing.T) {
	cases := []struct {
		text  string
		token string
		want  bool
	}{
		{"من زن هستم", "زن", true},
		{"وزن من زیاد است", "زن", false},
		{"زن", "زن", true},
		{"python و sql بلدم", "sql", true},
		{"mysql بلدم", "sql", false},
		{"مهارت: python.", "python", true},
		{"", "زن", false},
	}
	for _, c := range cases {
		if got := ContainsToken(c.text, c.token); got != c.want {
			t.Fatalf("ContainsToken(%q, %q) = %v, want %v", c.text, c.token, got, c.want)
		}
	}
}

func TestIndexTokenSkipsPartialHit(t *testing.T) {
	text := "mysql و sql بلدم"
	idx := IndexToken(text, "sql")
	if idx < 0 {
		t.Fatal("IndexToken found nothing")
	}
	if text[idx:idx+3] != "sql" || idx == 2 {
		t.Fatalf("IndexToken = %d, matched inside mysql", idx)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("پایتون، SQL و Docker, پایتون")
	want := []string{"پایتون", "SQL", "Docker"}
	if len(got) != len(want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitList = %v, want %v", got, want)
		}
	}
}
