package diagfmt

import (
	"io"

	"arraylint/internal/diag"
	"arraylint/internal/source"
)

// Short renders one line per diagnostic:
//
//	<severity> <ID> <path>:<line>:<col> <message> (<Name>) [fixable]
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	out := diag.FormatShortDiagnostics(bag.Items(), fs, false)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
