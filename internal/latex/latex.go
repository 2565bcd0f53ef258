package latex

import (
	"strings"
	"unicode"
)

// symbols maps LaTeX command names to plain-text replacements.
var symbols = map[string]string{
	// operators and relations
	"cdot": "·", "times": "×", "div": "÷", "pm": "±", "mp": "∓",
	"le": "≤", "leq": "≤", "leqslant": "≤", "ge": "≥", "geq": "≥", "geqslant": "≥",
	"ne": "≠", "neq": "≠", "approx": "≈", "sim": "~", "equiv": "≡", "cong": "≅",
	"ast": "*", "star": "⋆", "bullet": "•", "setminus": "∖",

	// arrows and logic
	"to": "→", "rightarrow": "→", "leftarrow": "←", "mapsto": "↦",
	"Rightarrow": "⇒", "implies": "⇒", "Leftrightarrow": "⇔", "iff": "⇔",
	"forall": "∀", "exists": "∃", "therefore": "∴", "because": "∵",

	// sets
	"in": "∈", "notin": "∉", "subset": "⊂", "subseteq": "⊆",
	"cup": "∪", "cap": "∩", "emptyset": "∅", "mid": "|", "nmid": "∤",

	// greek
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"varepsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "pi": "π", "rho": "ρ",
	"sigma": "σ", "tau": "τ", "phi": "φ", "varphi": "φ", "chi": "χ",
	"psi": "ψ", "omega": "ω", "Gamma": "Γ", "Delta": "Δ", "Theta": "Θ",
	"Lambda": "Λ", "Pi": "Π", "Sigma": "Σ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	// big operators and misc
	"sum": "∑", "prod": "∏", "int": "∫", "infty": "∞",
	"angle": "∠", "triangle": "△", "perp": "⊥", "parallel": "∥",
	"lfloor": "⌊", "rfloor": "⌋", "lceil": "⌈", "rceil": "⌉",
	"langle": "⟨", "rangle": "⟩", "prime": "′",
	"circ": "°", "degree": "°",
	"ldots": "…", "cdots": "…", "dots": "…", "dotsb": "…", "vdots": "⋮",

	// spacing
	"quad": " ", "qquad": " ", "thinspace": " ",

	// function names typeset upright
	"gcd": "gcd", "log": "log", "ln": "ln", "lg": "lg", "exp": "exp",
	"sin": "sin", "cos": "cos", "tan": "tan", "sec": "sec", "csc": "csc",
	"cot": "cot", "lim": "lim", "max": "max", "min": "min",
	"deg": "deg", "det": "det", "pmod": "mod", "bmod": "mod", "mod": "mod",
}

// wrappers are commands whose single argument is kept as-is.
var wrappers = map[string]bool{
	"text": true, "textbf": true, "textit": true, "textrm": true,
	"mathrm": true, "mathbf": true, "mathit": true, "mathcal": true,
	"mathtt": true, "mathbb": true, "operatorname": true, "emph": true,
	"boxed": true, "overline": true, "underline": true, "hat": true,
	"vec": true, "bar": true,
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', 'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋',
}

// Converter turns LaTeX math markup into plain text. The zero value is ready
// to use; conversion is stateless and safe for concurrent callers.
type Converter struct{}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Text converts a LaTeX markup string to plain text. It is a total function:
// malformed markup yields best-effort output, never an error.
func (c *Converter) Text(markup string) string {
	return convert([]rune(markup))
}

func convert(r []rune) string {
	var b strings.Builder
	i := 0
	for i < len(r) {
		switch ch := r[i]; ch {
		case '\\':
			i = command(&b, r, i)
		case '{':
			group, next := balancedGroup(r, i)
			b.WriteString(convert(group))
			i = next
		case '}', '$', '&':
			// stray close brace, math delimiter, alignment marker
			i++
		case '~':
			b.WriteRune(' ')
			i++
		case '^', '_':
			i = script(&b, r, i)
		default:
			b.WriteRune(ch)
			i++
		}
	}
	return b.String()
}

// command handles a backslash escape starting at r[i]. Returns the index of
// the first rune after the command and its arguments.
func command(b *strings.Builder, r []rune, i int) int {
	i++ // consume the backslash
	if i >= len(r) {
		return i
	}

	// single-character escapes
	if !unicode.IsLetter(r[i]) {
		switch r[i] {
		case '\\':
			b.WriteRune('\n')
		case '{', '}', '$', '%', '&', '#', '_':
			b.WriteRune(r[i])
		case ',', ';', ':':
			b.WriteRune(' ')
		case '[', ']', '(', ')', '!':
			// display-math delimiters and negative space: drop
		}
		return i + 1
	}

	start := i
	for i < len(r) && unicode.IsLetter(r[i]) {
		i++
	}
	name := string(r[start:i])

	switch {
	case name == "frac" || name == "dfrac" || name == "tfrac" || name == "cfrac":
		num, i2 := nextGroup(r, i)
		den, i3 := nextGroup(r, i2)
		b.WriteString(convert(num))
		b.WriteRune('/')
		b.WriteString(convert(den))
		return i3
	case name == "binom" || name == "dbinom":
		top, i2 := nextGroup(r, i)
		bot, i3 := nextGroup(r, i2)
		b.WriteString("(" + convert(top) + " choose " + convert(bot) + ")")
		return i3
	case name == "sqrt":
		i = skipBracketGroup(r, i)
		arg, next := nextGroup(r, i)
		b.WriteString("√" + convert(arg))
		return next
	case name == "begin" || name == "end":
		_, next := nextGroup(r, i)
		return next
	case name == "left" || name == "right":
		return i
	case wrappers[name]:
		arg, next := nextGroup(r, i)
		b.WriteString(convert(arg))
		return next
	}

	if text, ok := symbols[name]; ok {
		b.WriteString(text)
		return i
	}

	// unknown command: drop the name, keep any argument
	if i < len(r) && r[i] == '{' {
		arg, next := nextGroup(r, i)
		b.WriteString(convert(arg))
		return next
	}
	return i
}

// script handles a superscript or subscript marker at r[i].
func script(b *strings.Builder, r []rune, i int) int {
	marker := r[i]
	i++
	if i >= len(r) {
		return i
	}

	var content string
	switch {
	case r[i] == '{':
		group, next := balancedGroup(r, i)
		content = convert(group)
		i = next
	case r[i] == '\\':
		var cmd strings.Builder
		i = command(&cmd, r, i)
		content = cmd.String()
	default:
		content = string(r[i])
		i++
	}

	// degrees read naturally without a caret
	if marker == '^' && content == "°" {
		b.WriteString(content)
		return i
	}

	table := superscripts
	if marker == '_' {
		table = subscripts
	}
	if mapped, ok := mapAll(content, table); ok {
		b.WriteString(mapped)
		return i
	}

	b.WriteRune(marker)
	if len([]rune(content)) > 1 {
		b.WriteString("(" + content + ")")
	} else {
		b.WriteString(content)
	}
	return i
}

// mapAll translates every rune of s through the table, or reports failure.
func mapAll(s string, table map[rune]rune) (string, bool) {
	if s == "" {
		return "", false
	}
	var b strings.Builder
	for _, ch := range s {
		mapped, ok := table[ch]
		if !ok {
			return "", false
		}
		b.WriteRune(mapped)
	}
	return b.String(), true
}

// balancedGroup reads a brace group starting at r[i] == '{'. Returns the
// group's contents and the index after the matching close brace. An
// unterminated group runs to the end of input.
func balancedGroup(r []rune, i int) ([]rune, int) {
	depth := 0
	start := i + 1
	for ; i < len(r); i++ {
		switch r[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return r[start:i], i + 1
			}
		}
	}
	return r[start:], i
}

// nextGroup reads the next command argument: a brace group, or failing that
// a single rune (TeX's bare-token argument form).
func nextGroup(r []rune, i int) ([]rune, int) {
	for i < len(r) && r[i] == ' ' {
		i++
	}
	if i >= len(r) {
		return nil, i
	}
	if r[i] == '{' {
		return balancedGroup(r, i)
	}
	return r[i : i+1], i + 1
}

// skipBracketGroup skips an optional [..] argument if present.
func skipBracketGroup(r []rune, i int) int {
	if i >= len(r) || r[i] != '[' {
		return i
	}
	for ; i < len(r); i++ {
		if r[i] == ']' {
			return i + 1
		}
	}
	return i
}
