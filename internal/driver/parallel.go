package driver

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
	"volt/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла.
type TokenizeDirResult struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // Токены файла
	Bag    *diag.Bag     // Диагностики
}

// ParseDirResult содержит результат парсинга одного файла.
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Module *ast.Module
	Bag    *diag.Bag
}

// listVerilogFiles возвращает отсортированный список всех *.v файлов.
func listVerilogFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".v") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.v файлы директории параллельно.
// Файлы загружаются последовательно (FileSet не потокобезопасен),
// лексинг раскидывается по errgroup.
func TokenizeDir(dir string) ([]TokenizeDirResult, *source.FileSet, error) {
	files, err := listVerilogFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	results := make([]TokenizeDirResult, len(files))
	for i, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		results[i] = TokenizeDirResult{Path: path, FileID: fileID}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range results {
		i := i
		g.Go(func() error {
			res := &results[i]
			res.Bag = diag.NewBag(100)
			lx := lexer.New(fileSet.Get(res.FileID), lexer.Options{
				Reporter: diag.BagReporter{Bag: res.Bag},
			})
			for {
				tok := lx.Next()
				res.Tokens = append(res.Tokens, tok)
				if tok.Kind == token.EOF {
					return nil
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, fileSet, nil
}

// ParseDir парсит все *.v файлы директории параллельно.
func ParseDir(dir string) ([]ParseDirResult, *source.FileSet, error) {
	files, err := listVerilogFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	results := make([]ParseDirResult, len(files))
	for i, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		results[i] = ParseDirResult{Path: path, FileID: fileID}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range results {
		i := i
		g.Go(func() error {
			res := &results[i]
			res.Bag = diag.NewBag(100)
			reporter := diag.BagReporter{Bag: res.Bag}
			lx := lexer.New(fileSet.Get(res.FileID), lexer.Options{Reporter: reporter})
			parsed := parser.ParseFile(fileSet, lx, parser.Options{Reporter: reporter})
			res.Module = parsed.Module
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, fileSet, nil
}
