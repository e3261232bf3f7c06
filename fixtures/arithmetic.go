// Package fixtures provides a small, reusable grammar used by tests and
// the CLI demo: a left-recursion-free arithmetic expression language with
// the classic Expr/Term/Factor/Atom precedence ladder, grounded on spec
// §8's worked example and built the way the teacher's own reusable seed
// grammar is (tooling/grammar/examples.go's NewArithmeticGrammar). The
// token patterns are a richer superset of §8's literal NUMBER=/[0-9]+/
// and IDENT=/[a-z]/ (decimals, and identifiers beyond a single lowercase
// letter) rather than a literal transcription of that grammar; §8's
// end-to-end scenarios (integer NUMBER, single-letter IDENT) are still
// valid inputs against it.
package fixtures

import "github.com/grammarkit/parsekit/grammar"

// Token ids for the arithmetic grammar.
const (
	TokAdd = iota
	TokSub
	TokMul
	TokDiv
	TokLParen
	TokRParen
	TokNumber
	TokIdent
	TokWhitespace
)

// Production ids for the arithmetic grammar. SumTail and ProductTail are
// synthetic helper productions (spec §4.8): they model the grouped
// "(ADD|SUB) Term" and "(MUL|DIV) Factor" repetitions precisely, and are
// flattened out of the final parse tree since AddAlternative/AddChild
// have no native "grouped repetition" element to express a parenthesized
// sub-alternation directly on Expr/Term.
const (
	ProdExpr = 100 + iota
	ProdTerm
	ProdFactor
	ProdAtom
	ProdSumTail
	ProdProductTail
)

// NewArithmeticGrammar builds the seed grammar:
//
//	Expr       -> Term SumTail*
//	SumTail    -> ADD Term | SUB Term            (synthetic)
//	Term       -> Factor ProductTail*
//	ProductTail -> MUL Factor | DIV Factor       (synthetic)
//	Factor     -> Atom
//	Atom       -> NUMBER | IDENT | '(' Expr ')'
//
// Precedence climbs through the production nesting rather than through
// any operator-precedence table, the standard recursive-descent encoding
// spec §8 exercises in its six end-to-end scenarios.
func NewArithmeticGrammar() (*grammar.Grammar, error) {
	g := grammar.New()

	tokens := []struct {
		id   int
		name string
		kind grammar.TokenKind
		text string
		opts grammar.TokenOptions
	}{
		{TokAdd, "ADD", grammar.LiteralString, "+", grammar.TokenOptions{}},
		{TokSub, "SUB", grammar.LiteralString, "-", grammar.TokenOptions{}},
		{TokMul, "MUL", grammar.LiteralString, "*", grammar.TokenOptions{}},
		{TokDiv, "DIV", grammar.LiteralString, "/", grammar.TokenOptions{}},
		{TokLParen, "LPAREN", grammar.LiteralString, "(", grammar.TokenOptions{}},
		{TokRParen, "RPAREN", grammar.LiteralString, ")", grammar.TokenOptions{}},
		{TokNumber, "NUMBER", grammar.RegularExpression, `[0-9]+(\.[0-9]+)?`, grammar.TokenOptions{}},
		{TokIdent, "IDENT", grammar.RegularExpression, `[A-Za-z_][A-Za-z0-9_]*`, grammar.TokenOptions{}},
		{TokWhitespace, "WS", grammar.RegularExpression, `[ \t\r\n]+`, grammar.TokenOptions{Ignore: true}},
	}
	for _, t := range tokens {
		if _, err := g.AddTokenPattern(t.id, t.name, t.kind, t.text, t.opts); err != nil {
			return nil, err
		}
	}

	exprP, err := g.AddProductionPattern(ProdExpr, "Expr")
	if err != nil {
		return nil, err
	}
	termP, err := g.AddProductionPattern(ProdTerm, "Term")
	if err != nil {
		return nil, err
	}
	factorP, err := g.AddProductionPattern(ProdFactor, "Factor")
	if err != nil {
		return nil, err
	}
	atomP, err := g.AddProductionPattern(ProdAtom, "Atom")
	if err != nil {
		return nil, err
	}
	sumTailP, err := g.AddProductionPattern(ProdSumTail, "SumTail")
	if err != nil {
		return nil, err
	}
	sumTailP.SetSynthetic(true)
	productTailP, err := g.AddProductionPattern(ProdProductTail, "ProductTail")
	if err != nil {
		return nil, err
	}
	productTailP.SetSynthetic(true)

	if err := buildExpr(exprP); err != nil {
		return nil, err
	}
	if err := buildSumTail(sumTailP); err != nil {
		return nil, err
	}
	if err := buildTerm(termP); err != nil {
		return nil, err
	}
	if err := buildProductTail(productTailP); err != nil {
		return nil, err
	}
	if err := buildFactor(factorP); err != nil {
		return nil, err
	}
	if err := buildAtom(atomP); err != nil {
		return nil, err
	}

	if err := g.SetStartPattern(ProdExpr); err != nil {
		return nil, err
	}
	return g, nil
}

func elem(isToken bool, id, min, max int) (*grammar.ProductionPatternElement, error) {
	return grammar.NewElement(isToken, id, min, max)
}

func buildExpr(p *grammar.ProductionPattern) error {
	term, err := elem(false, ProdTerm, 1, 1)
	if err != nil {
		return err
	}
	tail, err := elem(false, ProdSumTail, 0, grammar.Unbounded)
	if err != nil {
		return err
	}
	_, err = p.AddAlternative(term, tail)
	return err
}

func buildSumTail(p *grammar.ProductionPattern) error {
	add, err := elem(true, TokAdd, 1, 1)
	if err != nil {
		return err
	}
	termA, err := elem(false, ProdTerm, 1, 1)
	if err != nil {
		return err
	}
	if _, err := p.AddAlternative(add, termA); err != nil {
		return err
	}

	sub, err := elem(true, TokSub, 1, 1)
	if err != nil {
		return err
	}
	termB, err := elem(false, ProdTerm, 1, 1)
	if err != nil {
		return err
	}
	_, err = p.AddAlternative(sub, termB)
	return err
}

func buildTerm(p *grammar.ProductionPattern) error {
	factor, err := elem(false, ProdFactor, 1, 1)
	if err != nil {
		return err
	}
	tail, err := elem(false, ProdProductTail, 0, grammar.Unbounded)
	if err != nil {
		return err
	}
	_, err = p.AddAlternative(factor, tail)
	return err
}

func buildProductTail(p *grammar.ProductionPattern) error {
	mul, err := elem(true, TokMul, 1, 1)
	if err != nil {
		return err
	}
	factorA, err := elem(false, ProdFactor, 1, 1)
	if err != nil {
		return err
	}
	if _, err := p.AddAlternative(mul, factorA); err != nil {
		return err
	}

	div, err := elem(true, TokDiv, 1, 1)
	if err != nil {
		return err
	}
	factorB, err := elem(false, ProdFactor, 1, 1)
	if err != nil {
		return err
	}
	_, err = p.AddAlternative(div, factorB)
	return err
}

func buildFactor(p *grammar.ProductionPattern) error {
	atom, err := elem(false, ProdAtom, 1, 1)
	if err != nil {
		return err
	}
	_, err = p.AddAlternative(atom)
	return err
}

func buildAtom(p *grammar.ProductionPattern) error {
	num, err := elem(true, TokNumber, 1, 1)
	if err != nil {
		return err
	}
	if _, err := p.AddAlternative(num); err != nil {
		return err
	}

	ident, err := elem(true, TokIdent, 1, 1)
	if err != nil {
		return err
	}
	if _, err := p.AddAlternative(ident); err != nil {
		return err
	}

	lp, err := elem(true, TokLParen, 1, 1)
	if err != nil {
		return err
	}
	inner, err := elem(false, ProdExpr, 1, 1)
	if err != nil {
		return err
	}
	rp, err := elem(true, TokRParen, 1, 1)
	if err != nil {
		return err
	}
	_, err = p.AddAlternative(lp, inner, rp)
	return err
}
