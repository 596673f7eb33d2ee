package calculator_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float32
	}{
		{"num", "1", 1},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", float32(4) / 5 / 6},
		{"subchain", "8-2-1-3+1", ((8 - 2) - 1 - 3) + 1},
		{"divchain", "64/4/2/2", 4},
		{"prec", "1 + 2 * (3 - 4)", -1},
		{"groups", "(5 * 3) + (8 - 2) / 4", 16.5},
		{"mixed", "4 + 4 * 2 / ( 1 - 5 )", 2},
		{"fraction", "2.5 + 3.5", 6},
		{"neg", "2-5", -3},
		{"nested", "((1+2)*(3+4))/5", 4.2},
		{"zero", "0*7", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := calculator.ParseString(c.src)
			require.NoError(t, err)
			r, ok := calculator.Evaluate(calculator.Postfix(toks))
			require.True(t, ok, "evaluating %q gave no result", c.src)
			require.InDelta(t, c.r, r, 1e-6, "evaluating %q", c.src)
		})
	}
}

func TestEvaluateLeftAssociative(t *testing.T) {
	// Right-to-left evaluation of these chains gives different answers.
	cases := []struct {
		src  string
		want string
	}{
		{"8-2-1-3+1", "3"},
		{"(8-2) - 1 - (3-1)", "3"},
		{"10-4+3", "9"},
		{"100/10/5", "2"},
		{"12/3*2", "8"},
	}
	for _, c := range cases {
		got, ok := calculator.Resolve(c.src)
		require.True(t, ok, "resolving %q", c.src)
		require.Equal(t, c.want, got, "resolving %q", c.src)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	cases := []struct {
		name string
		toks []calculator.Token
	}{
		{"empty", nil},
		{"op", []calculator.Token{calculator.Operator(calculator.OpAdd)}},
		{"oneoperand", []calculator.Token{calculator.Number(1), calculator.Operator(calculator.OpMul)}},
		{"twovalues", []calculator.Token{calculator.Number(1), calculator.Number(2)}},
		{"extraop", []calculator.Token{
			calculator.Number(1), calculator.Number(2),
			calculator.Operator(calculator.OpAdd), calculator.Operator(calculator.OpAdd),
		}},
		{"bracket", []calculator.Token{calculator.Number(1), calculator.Bracket('(')}},
		{"none", []calculator.Token{{}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, ok := calculator.Evaluate(c.toks)
			require.False(t, ok, "got result %g", r)
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	toks, err := calculator.ParseString("(2+2) + 5 + (3+3)")
	require.NoError(t, err)
	pf := calculator.Postfix(toks)
	orig := append([]calculator.Token(nil), pf...)
	a, ok := calculator.Evaluate(pf)
	require.True(t, ok)
	b, ok := calculator.Evaluate(pf)
	require.True(t, ok)
	require.Equal(t, a, b)
	require.Equal(t, float32(15), a)
	require.Equal(t, orig, pf)
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"sum", "2+2", "4"},
		{"sum-expr", "(2+2) + 5 + (3+3)", "15"},
		{"sub", "2-2", "0"},
		{"sub-expr", "(8-2) - 1 - (3-1)", "3"},
		{"mixed", "4 + 4 * 2 / ( 1 - 5 )", "2"},
		{"float-whole", "2.5 + 3.5", "6"},
		{"half", "1/2", "0.5"},
		{"third", "1/3", "0.33333334"},
		{"neg", "1-3.5", "-2.5"},
		{"negzero", "(1-2)*0", "0"},
		{"big", "1000000*1000", "1000000000"},
		{"newline", "2\n*\n3", "6"},
		{"div-zero", "1/0", "+Inf"},
		{"div-zero-neg", "(0-1)/0", "-Inf"},
		{"div-zero-zero", "0/0", "NaN"},
		{"trailing-point", "5.+1", "6"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := calculator.Resolve(c.src)
			require.True(t, ok, "resolving %q gave no result", c.src)
			require.Equal(t, c.want, got)
		})
	}
}

func TestResolveFails(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"emptyparen", "()"},
		{"badtoken", "1 & 2"},
		{"unclosed", "(1+2"},
		{"unopened", "1+2)"},
		{"leading-point", ".5"},
		{"dangling", "1+"},
		{"leading-op", "*2"},
		{"neg", "-1"},
		{"juxtaposed", "1 2"},
		{"opop", "1++2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := calculator.Resolve(c.src)
			require.False(t, ok, "resolving %q gave %q", c.src, got)
			require.Empty(t, got)
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		v    float32
		want string
	}{
		{0, "0"},
		{float32(math.Copysign(0, -1)), "0"},
		{6, "6"},
		{-6, "-6"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1e10, "10000000000"},
		{16777216, "16777216"},
		{float32(math.Inf(1)), "+Inf"},
		{float32(math.Inf(-1)), "-Inf"},
		{float32(math.NaN()), "NaN"},
	}
	for _, c := range cases {
		if got := calculator.Format(c.v); got != c.want {
			t.Errorf("wrong format for %g: want %q, got %q", c.v, c.want, got)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("1 + 2 * (3 - 4)")
	f.Add("(1+2")
	f.Add("2.5.5")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := calculator.ParseString(s)
		if err != nil && toks != nil {
			t.Errorf("%q gave tokens %v with error %v", s, toks, err)
		}
	})
}

func FuzzResolve(f *testing.F) {
	f.Add("4 + 4 * 2 / ( 1 - 5 )")
	f.Add("1/0")
	f.Add("1 2 +")
	f.Fuzz(func(t *testing.T, s string) {
		r, ok := calculator.Resolve(s)
		if !ok && r != "" {
			t.Errorf("%q failed with result %q", s, r)
		}
	})
}

func BenchmarkResolve(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		calculator.Resolve("4 + 4 * 2 / ( 1 - 5 ) + (2.5 + 3.5) * 10")
	}
}

func Example() {
	for _, src := range []string{"2+2", "4 + 4 * 2 / (1 - 5)", "1/4", "1/0", "(1+2"} {
		r, ok := calculator.Resolve(src)
		fmt.Printf("%-20s => %q %t\n", src, r, ok)
	}

	// Output:
	// 2+2                  => "4" true
	// 4 + 4 * 2 / (1 - 5)  => "2" true
	// 1/4                  => "0.25" true
	// 1/0                  => "+Inf" true
	// (1+2                 => "" false
}

func ExamplePostfix() {
	toks, err := calculator.ParseString("(5 * 3) + (8 - 2) / 4")
	if err != nil {
		panic(err)
	}
	pf := calculator.Postfix(toks)
	v, _ := calculator.Evaluate(pf)
	fmt.Println(calculator.FormatTokens(pf))
	fmt.Println(calculator.Format(v))

	// Output:
	// 5 3 * 8 2 - 4 / +
	// 16.5
}

func ExampleParse_error() {
	_, err := calculator.ParseString("1 + (2 * 3")
	fmt.Println(err)

	// Output:
	// 5: open bracket ( with no close bracket
}
