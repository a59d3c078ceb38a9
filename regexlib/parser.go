package regexlib

// Parse converts regex to postfix order.
//
// Every code point of regex is one token; combining marks are literals of
// their own. The input is checked for balanced parentheses, given explicit
// concatenation tokens and reduced with the shunting-yard algorithm. An
// empty regex yields an empty sequence.
func Parse(regex string) ([]Token, error) {
	tokens, err := tokenize(regex)
	if err != nil {
		return nil, withRegex(err, regex)
	}
	return toPostfix(insertConcat(tokens)), nil
}

// precedence of binary and postfix operators; ( has none of its own and acts
// as a barrier on the operator stack.
func precedence(k TokenKind) int {
	switch k {
	case TokStar:
		return 3
	case TokConcat:
		return 2
	case TokUnion:
		return 1
	default:
		return 0
	}
}

// toPostfix assumes balanced parentheses.
func toPostfix(infix []Token) []Token {
	out := make([]Token, 0, len(infix))
	var ops []Token
	for _, tok := range infix {
		switch tok.Kind {
		case TokLiteral:
			out = append(out, tok)
		case TokLParen:
			ops = append(ops, tok)
		case TokRParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != TokLParen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1]
			}
		default:
			// all operators are left-associative
			for len(ops) > 0 && precedence(ops[len(ops)-1].Kind) >= precedence(tok.Kind) {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return out
}
