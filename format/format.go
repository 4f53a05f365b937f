package format

import (
	"io"
	"maps"
	"slices"

	"github.com/ezrec/mc8/asm"
	"github.com/ezrec/mc8/micro"
)

// ImageFormat renders a program image.
type ImageFormat func(w io.Writer, img *asm.Image) error

// TableFormat renders a resolved microcode table.
type TableFormat func(w io.Writer, table *micro.Table) error

var imageFormats = map[string]ImageFormat{
	"raw": ImageRaw,
	"bin": ImageBin,
	"hex": ImageHex,
	"mif": ImageMif,
}

var tableFormats = map[string]TableFormat{
	"bin":  TableBin,
	"hex":  TableHex,
	"vhdl": TableVhdl,
	"mem":  TableMem,
}

// LookupImage finds a program image format by name.
func LookupImage(name string) (format ImageFormat, ok bool) {
	format, ok = imageFormats[name]
	return
}

// LookupTable finds a microcode table format by name.
func LookupTable(name string) (format TableFormat, ok bool) {
	format, ok = tableFormats[name]
	return
}

// ImageNames lists the program image format names.
func ImageNames() []string {
	return slices.Sorted(maps.Keys(imageFormats))
}

// TableNames lists the microcode table format names.
func TableNames() []string {
	return slices.Sorted(maps.Keys(tableFormats))
}
