package latex

import "testing"

func TestText(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"simple fraction", `\frac{1}{2}`, "1/2"},
		{"bare token fraction", `\frac12`, "1/2"},
		{"nested fraction", `\frac{a+b}{c}`, "a+b/c"},
		{"display fraction", `\dfrac{3}{4}`, "3/4"},
		{"dollar delimiters", `$x+1$`, "x+1"},
		{"multiplication", `5 \cdot 3`, "5 · 3"},
		{"times", `2\times4`, "2×4"},
		{"inequality", `x \le 10`, "x ≤ 10"},
		{"pi", `2\pi r`, "2π r"},
		{"superscript digit", `x^2`, "x²"},
		{"superscript group", `2^{10}`, "2¹⁰"},
		{"superscript expression", `x^{a+b}`, "x^(a+b)"},
		{"degrees", `90^\circ`, "90°"},
		{"sqrt", `\sqrt{16}`, "√16"},
		{"sqrt with index", `\sqrt[3]{8}`, "√8"},
		{"text wrapper", `\text{apples}`, "apples"},
		{"mathrm wrapper", `\mathrm{cm}^2`, "cm²"},
		{"boxed answer", `\boxed{042}`, "042"},
		{"binomial", `\binom{n}{k}`, "(n choose k)"},
		{"environment stripped", `\begin{align*}x=1\end{align*}`, "x=1"},
		{"left right dropped", `\left(\frac{1}{2}\right)`, "(1/2)"},
		{"ellipsis", `1, 2, \ldots, n`, "1, 2, …, n"},
		{"arrow", `a \implies b`, "a ⇒ b"},
		{"tilde space", `a~b`, "a b"},
		{"unknown command dropped", `\foobar{kept}`, "kept"},
		{"unknown command no arg", `\foobar x`, " x"},
		{"empty input", ``, ``},
		{"unterminated group", `\frac{1}{2`, "1/2"},
		{"stray close brace", `a}b`, "ab"},
		{"lone backslash", `\`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Text(tt.markup); got != tt.want {
				t.Errorf("Text(%q) = %q, expected %q", tt.markup, got, tt.want)
			}
		})
	}
}

func TestTextSubscripts(t *testing.T) {
	c := NewConverter()
	if got := c.Text(`a_{12}`); got != "a₁₂" {
		t.Errorf("Text(a_{12}) = %q, expected %q", got, "a₁₂")
	}
	if got := c.Text(`x_i`); got != "x_i" {
		t.Errorf("Text(x_i) = %q, expected %q", got, "x_i")
	}
}

// Conversion must never fail, whatever the input looks like.
func TestTextTotal(t *testing.T) {
	c := NewConverter()
	inputs := []string{
		`\frac{`, `{{{`, `}}}`, `\begin{`, `^`, `_`, `\left`, `\sqrt`,
		`\\\\`, `$$$$`, `\frac\frac\frac`, "\x00\\weird",
	}
	for _, in := range inputs {
		// just ensure no panic and a string comes back
		_ = c.Text(in)
	}
}
