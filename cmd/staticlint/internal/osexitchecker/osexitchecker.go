package osexitchecker

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports direct os.Exit calls in func main of package main.
// The server has to return from main so deferred log syncs and shutdown run.
var Analyzer = &analysis.Analyzer{
	Name: "osexitcheck",
	Doc:  "checks of calling os.Exit in main package main func",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		//nolint: nilnil // expected
		return nil, nil
	}

	for _, file := range pass.Files {
		if skipFile(pass, file) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			checkBody(pass, fn.Body)
		}
	}

	//nolint: nilnil // expected
	return nil, nil
}

// skipFile reports files the developer did not write, such as the test main
// that go test generates into the build cache.
func skipFile(pass *analysis.Pass, file *ast.File) bool {
	if ast.IsGenerated(file) {
		return true
	}

	tf := pass.Fset.File(file.Pos())
	return tf == nil || !strings.HasSuffix(tf.Name(), ".go")
}

func checkBody(pass *analysis.Pass, body *ast.BlockStmt) {
	ast.Inspect(body, func(node ast.Node) bool {
		if _, ok := node.(*ast.FuncLit); ok {
			return false
		}
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}
		if isOSExit(pass, call) {
			pass.Reportf(call.Pos(), "calling os.Exit in main package main func")
		}
		return true
	})
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
