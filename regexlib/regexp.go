package regexlib

// CompileNFA parses regex and builds its Thompson NFA. Errors match
// ErrInvalidRegex.
func CompileNFA(regex string) (*NFA, error) {
	postfix, err := Parse(regex)
	if err != nil {
		return nil, err
	}
	n, err := Build(postfix)
	if err != nil {
		return nil, withRegex(err, regex)
	}
	return n, nil
}

// Regex keeps every stage of the pipeline for one pattern.
type Regex struct {
	pattern string
	postfix []Token
	nfa     *NFA
	rawDFA  *DFA
	dfa     *DFA
}

// Compile runs the whole pipeline on pattern.
func Compile(pattern string) (*Regex, error) {
	postfix, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	n, err := Build(postfix)
	if err != nil {
		return nil, withRegex(err, pattern)
	}
	raw := Determinize(n)
	return &Regex{
		pattern: pattern,
		postfix: postfix,
		nfa:     n,
		rawDFA:  raw,
		dfa:     Minimize(raw),
	}, nil
}

func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Equal compiles both patterns and compares their minimal DFAs.
func Equal(p1, p2 string) (bool, error) {
	r1, err := Compile(p1)
	if err != nil {
		return false, err
	}
	r2, err := Compile(p2)
	if err != nil {
		return false, err
	}
	return r1.Equivalent(r2), nil
}

// Equivalent reports whether r and o denote the same language.
func (r *Regex) Equivalent(o *Regex) bool { return Equivalent(r.dfa, o.dfa) }

// Distinguish returns a shortest word in exactly one of the two languages.
func (r *Regex) Distinguish(o *Regex) (string, bool) { return Distinguish(r.dfa, o.dfa) }

// MatchString reports whether the whole of s is in r's language.
func (r *Regex) MatchString(s string) bool { return r.dfa.Accepts(s) }

func (r *Regex) String() string   { return r.pattern }
func (r *Regex) Postfix() []Token { return append([]Token(nil), r.postfix...) }
func (r *Regex) NFA() *NFA        { return r.nfa }
func (r *Regex) RawDFA() *DFA     { return r.rawDFA }
func (r *Regex) DFA() *DFA        { return r.dfa }
