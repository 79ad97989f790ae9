package driver

import (
	"fmt"

	"arraylint/internal/diag"
	"arraylint/internal/lexer"
	"arraylint/internal/source"
	"arraylint/internal/token"
)

// TokenizeResult holds the token stream of one file and the lexical
// diagnostics raised while building it.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *token.Stream
	Bag     *diag.Bag
}

// Tokenize loads path and tokenizes it without running any rule.
func Tokenize(path string, tabWidth, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	stream := lexer.Scan(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		TabWidth: tabWidth,
	})
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Stream:  stream,
		Bag:     bag,
	}, nil
}
