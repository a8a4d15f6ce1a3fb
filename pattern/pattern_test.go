package pattern_test

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/TsubasaBE/go-datefmt/pattern"
)

func sym(text string) pattern.Token { return pattern.Token{Kind: pattern.Symbol, Text: text} }
func sfx(text string) pattern.Token {
	return pattern.Token{Kind: pattern.Symbol, Text: text, Suffix: true}
}
func lit(text string) pattern.Token { return pattern.Token{Kind: pattern.Literal, Text: text} }

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []pattern.Token
	}{
		{"empty", "", nil},
		{"iso date", "YYYY-MM-DD", []pattern.Token{sym("YYYY"), lit("-"), sym("MM"), lit("-"), sym("DD")}},
		{"suffix consumed", "YYYY#", []pattern.Token{sfx("YYYY")}},
		{"suffix then text", "D# MMMM", []pattern.Token{sfx("D"), lit(" "), sym("MMMM")}},
		{"case sensitive runs", "MMmm", []pattern.Token{sym("MM"), sym("mm")}},
		{"single quoted literal", "HH'h'mm", []pattern.Token{sym("HH"), lit("h"), sym("mm")}},
		{"double quoted literal", `YYYY"at"HH`, []pattern.Token{sym("YYYY"), lit("at"), sym("HH")}},
		{"other quote inside literal", `'it"s'`, []pattern.Token{lit(`it"s`)}},
		{"escaped character", `\YYYY`, []pattern.Token{lit("Y"), sym("YYY")}},
		{"escaped backslash", `\\`, []pattern.Token{lit(`\`)}},
		{"trailing backslash", `HH\`, []pattern.Token{sym("HH"), lit("")}},
		{"unterminated literal", "HH'oops", []pattern.Token{sym("HH"), lit("oops")}},
		{"empty literal", "HH''mm", []pattern.Token{sym("HH"), lit(""), sym("mm")}},
		{"quoted hash is literal", "D'#'", []pattern.Token{sym("D"), lit("#")}},
		{"hash after punctuation is consumed", "-#D", []pattern.Token{lit("-"), sym("D")}},
		{"hash run", "##", []pattern.Token{lit("##")}},
		{"punctuation run", "HH::mm", []pattern.Token{sym("HH"), lit("::"), sym("mm")}},
		{"literal T between symbols", "DDTHH", []pattern.Token{sym("DD"), sym("T"), sym("HH")}},
		{"non-ASCII letters", "ÄÄx", []pattern.Token{sym("ÄÄ"), sym("x")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pattern.Tokenize(tc.pattern)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.pattern, got, tc.want)
			}
		})
	}
}

// TestTokenizeLiteralsStable checks that a pattern made only of literal
// spans tokenizes to literals whose bodies concatenate to the same text
// again.
func TestTokenizeLiteralsStable(t *testing.T) {
	for _, p := range []string{"'at' -- 'on'", `"T"\Z::`, "'x'' '"} {
		lits := pattern.Literals(pattern.Tokenize(p))
		for _, tok := range pattern.Tokenize(p) {
			if tok.Kind != pattern.Literal {
				t.Fatalf("Tokenize(%q) produced %v, want only literals", p, tok)
			}
		}
		joined := strings.Join(lits, "")
		var quoted strings.Builder
		for _, l := range lits {
			quoted.WriteString("'" + l + "'")
		}
		again := pattern.Literals(pattern.Tokenize(quoted.String()))
		if !reflect.DeepEqual(again, lits) {
			t.Errorf("re-tokenized literals of %q = %q, want %q", p, again, lits)
		}
		if strings.Join(again, "") != joined {
			t.Errorf("re-tokenized text of %q = %q, want %q", p, strings.Join(again, ""), joined)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  pattern.Token
		want string
	}{
		{sym("YYYY"), "Symbol(YYYY)"},
		{sfx("D"), "Symbol(D#)"},
		{lit("-"), `Literal("-")`},
	}
	for _, tc := range tests {
		if got := tc.tok.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
	if got := pattern.Kind(9).String(); got != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}

func TestCache(t *testing.T) {
	c := pattern.NewCache(2)
	a := c.Tokens("YYYY")
	if !reflect.DeepEqual(a, []pattern.Token{sym("YYYY")}) {
		t.Fatalf("Tokens(YYYY) = %v", a)
	}
	c.Tokens("MM")
	c.Tokens("YYYY")
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	c.Tokens("DD") // evicts MM, the least recently used
	if c.Len() != 2 {
		t.Fatalf("Len after eviction = %d, want 2", c.Len())
	}
	if got := c.Tokens("MM"); !reflect.DeepEqual(got, []pattern.Token{sym("MM")}) {
		t.Errorf("Tokens(MM) after eviction = %v", got)
	}
}

func TestCacheDefaultSize(t *testing.T) {
	c := pattern.NewCache(0)
	for i := 0; i < pattern.DefaultCacheSize+10; i++ {
		c.Tokens(strings.Repeat("x", i+1))
	}
	if c.Len() != pattern.DefaultCacheSize {
		t.Errorf("Len = %d, want %d", c.Len(), pattern.DefaultCacheSize)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := pattern.NewCache(8)
	want := pattern.Tokenize("YYYY-MM-DD HH:mm")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Tokens("YYYY-MM-DD HH:mm"); !reflect.DeepEqual(got, want) {
				t.Errorf("Tokens = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}
