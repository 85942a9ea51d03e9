package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

func main() {
	inputPath := os.Args[1]
	outputPath := os.Args[2]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		panic(err)
	}

	var input Input
	err = json.Unmarshal(data, &input)
	if err != nil {
		panic(err)
	}

	if len(input.Kinds) == 0 {
		panic("no token kinds in " + inputPath)
	}

	output, err := fileToString(fileFromInput(&input))
	if err != nil {
		panic(err)
	}

	if outputPath == "-" {
		fmt.Print(output)
	} else {
		err = os.WriteFile(outputPath, []byte(output), 0o666)
		if err != nil {
			panic(err)
		}
	}
}

func fileFromInput(input *Input) *ast.File {
	file := new(ast.File)
	file.Name = ast.NewIdent("token")

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name: ast.NewIdent("Kind"),
				Type: ast.NewIdent("int"),
			},
		},
	})

	specs := make([]ast.Spec, 0, len(input.Kinds))
	for i, name := range input.Kinds {
		spec := &ast.ValueSpec{Names: []*ast.Ident{ast.NewIdent(name)}}
		if i == 0 {
			spec.Type = ast.NewIdent("Kind")
			spec.Values = []ast.Expr{ast.NewIdent("iota")}
		}
		specs = append(specs, spec)
	}

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok:    token.CONST,
		Lparen: 1,
		Specs:  specs,
		Rparen: 1,
	})

	first := ast.NewIdent(input.Kinds[0])
	last := ast.NewIdent(input.Kinds[len(input.Kinds)-1])

	file.Decls = append(file.Decls, &ast.FuncDecl{
		Recv: &ast.FieldList{
			List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent("k")},
				Type:  ast.NewIdent("Kind"),
			}},
		},
		Name: ast.NewIdent("String"),
		Type: &ast.FuncType{
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("string")}}},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.IfStmt{
					Cond: &ast.BinaryExpr{
						X: &ast.BinaryExpr{
							X:  ast.NewIdent("k"),
							Op: token.LSS,
							Y:  &ast.BasicLit{Kind: token.INT, Value: "0"},
						},
						Op: token.LOR,
						Y: &ast.BinaryExpr{
							X:  ast.NewIdent("k"),
							Op: token.GTR,
							Y:  last,
						},
					},
					Body: &ast.BlockStmt{
						List: []ast.Stmt{
							&ast.AssignStmt{
								Lhs: []ast.Expr{ast.NewIdent("k")},
								Tok: token.ASSIGN,
								Rhs: []ast.Expr{first},
							},
						},
					},
				},
				&ast.ReturnStmt{
					Results: []ast.Expr{
						&ast.IndexExpr{
							X:     ast.NewIdent("names"),
							Index: ast.NewIdent("k"),
						},
					},
				},
			},
		},
	})

	file.Decls = append(file.Decls, stringSlice("names", input.Kinds))

	for _, name := range slices.Sorted(maps.Keys(input.Tables)) {
		file.Decls = append(file.Decls, stringSlice(name, longestFirst(input.Tables[name])))
	}

	return file
}

// longestFirst orders spellings so that a linear scan returns the longest
// match first. Equal lengths sort lexically to keep the output stable.
func longestFirst(spellings []string) []string {
	sorted := slices.Clone(spellings)
	slices.SortFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return slices.Compact(sorted)
}

func stringSlice(name string, values []string) *ast.GenDecl {
	elts := make([]ast.Expr, 0, len(values))
	for _, v := range values {
		elts = append(elts, &ast.BasicLit{
			Kind:  token.STRING,
			Value: strconv.Quote(v),
		})
	}
	return &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(name)},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: &ast.ArrayType{Elt: ast.NewIdent("string")},
				Elts: elts,
			}},
		}},
	}
}

func fileToString(f *ast.File) (string, error) {
	var b strings.Builder
	b.WriteString("// Code generated by generate_tokens.go. DO NOT EDIT.\n\n")
	err := format.Node(&b, token.NewFileSet(), f)
	return b.String(), err
}

type Input struct {
	Kinds  []string            `json:"kinds"`
	Tables map[string][]string `json:"tables"`
}
