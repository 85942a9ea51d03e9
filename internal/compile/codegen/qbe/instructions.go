package qbe

type Ret struct{ Value Value }

func NewRet(value Value) *Ret { return &Ret{value} }

// Call invokes Base. When Variadic is positive, the arguments from that
// index on are passed through the callee's variadic parameter.
type Call struct {
	Out      Value
	Type     Type
	Base     Value
	Args     []Value
	Variadic int
}

func NewCall(out Value, typ Type, base Value, args []Value) *Call {
	return &Call{Out: out, Type: typ, Base: base, Args: args}
}

type threeAddress struct {
	name string
	out  Value
	typ  Type
	a, b Value
}

type Add struct{ threeAddress }

func NewAdd(out Value, typ Type, a, b Value) *Add {
	return &Add{threeAddress{"add", out, typ, a, b}}
}

type Sub struct{ threeAddress }

func NewSub(out Value, typ Type, a, b Value) *Sub {
	return &Sub{threeAddress{"sub", out, typ, a, b}}
}

type Mul struct{ threeAddress }

func NewMul(out Value, typ Type, a, b Value) *Mul {
	return &Mul{threeAddress{"mul", out, typ, a, b}}
}

type Div struct{ threeAddress }

func NewDiv(out Value, typ Type, a, b Value) *Div {
	return &Div{threeAddress{"div", out, typ, a, b}}
}

// Neg is the unary negation; it is written without a second operand.
type Neg struct{ threeAddress }

func NewNeg(out Value, typ Type, a Value) *Neg {
	return &Neg{threeAddress{"neg", out, typ, a, nil}}
}
