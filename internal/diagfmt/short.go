package diagfmt

import (
	"io"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

// Short prints one line per diagnostic in the stable format the golden
// tests compare against, e.g.:
//
//	error SEM3005 main.swift:1:9 use of undeclared type 'Point'
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, showNotes bool) error {
	_, err := io.WriteString(w, diag.FormatGolden(bag.Items(), fs, showNotes))
	return err
}
