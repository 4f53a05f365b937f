package micro

import (
	"fmt"
)

// Entry is one row of the control store. Its address is its index in the
// Table.
type Entry struct {
	LineNo  int    // Source line number.
	Line    string // Source line without its comment.
	Address string // Address field as written, used to resolve "+1".

	Next  NextAddress
	Jump  Field
	Alu   Field
	Write Field
	Bus   Field
}

// Fields returns the control fields in word order, most significant first.
func (entry *Entry) Fields() []Field {
	return []Field{entry.Next.Field, entry.Jump, entry.Alu, entry.Write, entry.Bus}
}

// Word packs the control fields of a resolved entry.
func (entry *Entry) Word() (word Word, err error) {
	if entry.Next.Sequential {
		err = ErrUnresolved
		return
	}

	for _, field := range entry.Fields() {
		word = (word << field.Width) | Word(field.Value&(1<<field.Width-1))
	}

	return
}

// Word is a 16-bit control word.
type Word uint16

// String renders the word as 16 binary digits.
func (word Word) String() string {
	return fmt.Sprintf("%0*b", WORD_WIDTH, uint16(word))
}

// Unpack splits a word back into its control fields.
func (word Word) Unpack() (next, jump, alu, write, bus Field) {
	out := [](*Field){&bus, &write, &alu, &jump, &next}
	widths := []int{BUS_WIDTH, WRITE_WIDTH, ALU_WIDTH, JUMP_WIDTH, NEXT_WIDTH}
	for n, width := range widths {
		*out[n] = Field{Value: uint16(word) & (1<<width - 1), Width: width}
		word >>= width
	}
	return
}

// Table is the control store, index == address.
type Table struct {
	Entries []Entry
}

// Resolve replaces every "+1" next address with the address field of the
// row that follows it.
func (table *Table) Resolve() (err error) {
	for n := range table.Entries {
		entry := &table.Entries[n]
		if !entry.Next.Sequential {
			continue
		}

		if n+1 >= len(table.Entries) {
			return &ErrSyntax{LineNo: entry.LineNo, Line: entry.Line, Err: ErrSequentialLast}
		}

		following := &table.Entries[n+1]
		var field Field
		field, err = ParseField("address", following.Address, ADDRESS_WIDTH)
		if err == nil && len(following.Address) == 0 {
			err = &ErrFieldWidth{Name: "address", Text: following.Address, Width: ADDRESS_WIDTH}
		}
		if err != nil {
			err = &ErrAddressInvalid{LineNo: following.LineNo, Address: following.Address, Err: err}
			return &ErrSyntax{LineNo: entry.LineNo, Line: entry.Line, Err: err}
		}

		entry.Next = NextAddress{Field: field}
	}

	return
}

// Words packs every entry. The table must be resolved.
func (table *Table) Words() (words []Word, err error) {
	words = make([]Word, 0, len(table.Entries))
	for n := range table.Entries {
		var word Word
		word, err = table.Entries[n].Word()
		if err != nil {
			words = nil
			return
		}
		words = append(words, word)
	}

	return
}
