package token

type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedenceUnary
)

// Precedence reports the binding strength of t as a binary operator.
func (t Type) Precedence() Precedence {
	switch t {
	case Plus, Minus:
		return PrecedenceAdditive
	case Mul, Div:
		return PrecedenceMultiplicative
	default:
		return PrecedenceNone
	}
}
