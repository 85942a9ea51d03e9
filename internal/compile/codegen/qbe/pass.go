package qbe

import (
	"fmt"

	"codeberg.org/rileyq/calc/internal/compile/ast"
	"codeberg.org/rileyq/calc/internal/compile/token"
)

// Translate compiles x into an exported function called name that takes no
// arguments and returns the value of x as a double.
func Translate(x ast.Expr, name string) (*Module, error) {
	p := pass{curModule: &ModuleBuilder{}}
	fn, err := p.function(x, name)
	if err != nil {
		return nil, err
	}
	p.curModule.Add(fn)
	return p.curModule.Module(), nil
}

// TranslateProgram compiles x into a function $expr and a $main that
// prints its result with printf.
func TranslateProgram(x ast.Expr) (*Module, error) {
	p := pass{curModule: &ModuleBuilder{}}
	fn, err := p.function(x, "expr")
	if err != nil {
		return nil, err
	}
	format := p.curModule.StringLiteral("%g\n")
	p.curModule.Add(fn)
	p.curModule.Add(p.main(fn, format))
	return p.curModule.Module(), nil
}

type pass struct {
	curModule *ModuleBuilder
	curFunc   *FunctionBuilder
	curBlock  *BlockBuilder
}

func (p *pass) function(x ast.Expr, name string) (*Function, error) {
	var fb FunctionBuilder
	fb.Export()
	fb.Name(name)
	fb.Returns(Double)
	var startBlock BlockBuilder
	startBlock.Name("start")

	p.curFunc = &fb
	p.curBlock = &startBlock
	result, err := p.expr(x)
	if err != nil {
		return nil, err
	}
	startBlock.Add(NewRet(result))

	fb.Add(startBlock.Block())
	return fb.Function(), nil
}

func (p *pass) main(fn *Function, format *Global) *Function {
	var fb FunctionBuilder
	fb.Export()
	fb.Name("main")
	fb.Returns(Word)
	var startBlock BlockBuilder
	startBlock.Name("start")

	result := fb.Temporary(Double)
	startBlock.Add(NewCall(result, Double, NewGlobal(fn.Name, Long), nil))
	printf := NewCall(nil, nil, NewGlobal("printf", Long), []Value{format, result})
	printf.Variadic = 1
	startBlock.Add(printf)
	startBlock.Add(NewRet(Constant(0)))

	fb.Add(startBlock.Block())
	return fb.Function()
}

func (p *pass) expr(x ast.Expr) (Value, error) {
	switch x := x.(type) {
	case *ast.NumberLit:
		if x == nil {
			break
		}
		return Float(x.Value), nil
	case *ast.UnaryExpr:
		if x == nil || x.Op != token.Minus {
			break
		}
		a, err := p.expr(x.X)
		if err != nil {
			return nil, err
		}
		result := p.curFunc.Temporary(Double)
		p.curBlock.Add(NewNeg(result, Double, a))
		return result, nil
	case *ast.BinaryExpr:
		if x == nil {
			break
		}
		a, err := p.expr(x.Left)
		if err != nil {
			return nil, err
		}
		b, err := p.expr(x.Right)
		if err != nil {
			return nil, err
		}
		result := p.curFunc.Temporary(Double)
		switch x.Op {
		case token.Plus:
			p.curBlock.Add(NewAdd(result, Double, a, b))
		case token.Minus:
			p.curBlock.Add(NewSub(result, Double, a, b))
		case token.Mul:
			p.curBlock.Add(NewMul(result, Double, a, b))
		case token.Div:
			p.curBlock.Add(NewDiv(result, Double, a, b))
		default:
			return nil, fmt.Errorf("qbe: unhandled operator %v", x.Op)
		}
		return result, nil
	}
	return nil, fmt.Errorf("qbe: unhandled expression: %T", x)
}
