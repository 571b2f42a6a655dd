package driver

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Module  *ast.Module
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	result := parser.ParseFile(fs, lx, parser.Options{Reporter: reporter})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Module:  result.Module,
		Bag:     bag,
	}, nil
}
