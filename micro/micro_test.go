package micro

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const header = "address|next_address|jump_condition|alu_op|write_lines|bus_select"

func parse(t *testing.T, rows ...string) (table *Table) {
	p := &Parser{}
	table, err := p.Parse(strings.NewReader(strings.Join(append([]string{header}, rows...), "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	table := parse(t,
		"00000|+1|0|000|00001|01  # fetch",
		"# a comment line",
		"",
		"00001|+1|||00010|",
		"00010 | 00000 | 1 | 011 | 00000 | 10",
	)

	assert.Equal(3, len(table.Entries))

	entry := table.Entries[0]
	assert.Equal(2, entry.LineNo)
	assert.Equal("00000|+1|0|000|00001|01", entry.Line)
	assert.Equal("00000", entry.Address)
	assert.True(entry.Next.Sequential)
	assert.Equal("+1", entry.Next.String())
	assert.Equal(Field{Value: 1, Width: WRITE_WIDTH}, entry.Write)
	assert.Equal(Field{Value: 1, Width: BUS_WIDTH}, entry.Bus)

	entry = table.Entries[1]
	assert.Equal(5, entry.LineNo)
	assert.Equal("0", entry.Jump.String())
	assert.Equal("000", entry.Alu.String())
	assert.Equal("00010", entry.Write.String())
	assert.Equal("00", entry.Bus.String())

	entry = table.Entries[2]
	assert.Equal("00010", entry.Address)
	assert.False(entry.Next.Sequential)
	assert.Equal("00000", entry.Next.String())
	assert.Equal("1", entry.Jump.String())
	assert.Equal("011", entry.Alu.String())
	assert.Equal("10", entry.Bus.String())
}

func TestParserDefaults(t *testing.T) {
	assert := assert.New(t)

	table := parse(t, "00000|||||")
	assert.Equal(1, len(table.Entries))

	var text []string
	for _, field := range table.Entries[0].Fields() {
		text = append(text, field.String())
	}
	assert.Equal([]string{"00000", "0", "000", "00000", "00"}, text)

	assert.NoError(table.Resolve())
	words, err := table.Words()
	assert.NoError(err)
	assert.Equal([]Word{0}, words)
}

func TestParserHeader(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{Verbose: true}

	// The header is discarded even when it looks like a row.
	table, err := p.Parse(strings.NewReader("00000|00001|0|000|00000|00\n00001|00010|0|000|00000|00\n"))
	assert.NoError(err)
	assert.Equal(1, len(table.Entries))
	assert.Equal("00001", table.Entries[0].Address)

	table, err = p.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(table.Entries))

	table, err = p.Parse(strings.NewReader("garbage header with | bars"))
	assert.NoError(err)
	assert.Equal(0, len(table.Entries))
}

func TestParserRowShape(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]int{
		"00000|00001|0|000|00000":       5,
		"00000|00001|0|000|00000|00|11": 7,
		"00000":                         1,
	}

	for row, fields := range tests {
		p := &Parser{}
		table, err := p.Parse(strings.NewReader(header + "\n00000|||||\n" + row))
		assert.Nil(table)
		assert.ErrorIs(err, ErrRowShape(fields), row)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax)) {
			assert.Equal(3, syntax.LineNo)
			assert.Equal(row, syntax.Line)
		}
	}
}

func TestParserFieldWidth(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]string{
		"00000|0001|0|000|00000|00":   "next_address",
		"00000|00001|2|000|00000|00":  "jump_condition",
		"00000|00001|0|0000|00000|00": "alu_op",
		"00000|00001|0|000|0000x|00":  "write_lines",
		"00000|00001|0|000|00000|3":   "bus_select",
		"00000|+2|0|000|00000|00":     "next_address",
	}

	for row, name := range tests {
		p := &Parser{}
		_, err := p.Parse(strings.NewReader(header + "\n" + row))

		var width *ErrFieldWidth
		if assert.True(errors.As(err, &width), row) {
			assert.Equal(name, width.Name, row)
		}
	}
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	table := parse(t,
		"00000|+1|0|000|00001|01",
		"00001|+1|||00010|",
		"00010|00000|1|011|00000|10",
	)

	assert.NoError(table.Resolve())

	assert.Equal(NextAddress{Field: Field{Value: 0b00001, Width: NEXT_WIDTH}}, table.Entries[0].Next)
	assert.Equal(NextAddress{Field: Field{Value: 0b00010, Width: NEXT_WIDTH}}, table.Entries[1].Next)
	assert.Equal("00000", table.Entries[2].Next.String())

	words, err := table.Words()
	assert.NoError(err)
	assert.Equal([]Word{0x0805, 0x1008, 0x0582}, words)
	assert.Equal("0000100000000101", words[0].String())
}

// "+1" copies the literal address of the next row; it is not row index + 1.
func TestResolveLiteralAddress(t *testing.T) {
	assert := assert.New(t)

	table := parse(t,
		"00000|+1||||",
		"10101|+1||||",
		"00011|||||",
	)

	assert.NoError(table.Resolve())
	assert.Equal("10101", table.Entries[0].Next.String())
	assert.Equal("00011", table.Entries[1].Next.String())
}

func TestResolveLastRow(t *testing.T) {
	assert := assert.New(t)

	table := parse(t,
		"00000|+1||||",
		"00001|+1||||",
	)

	err := table.Resolve()
	assert.ErrorIs(err, ErrSequentialLast)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(3, syntax.LineNo)
	}

	_, err = (&Parser{}).Compile(strings.NewReader(header + "\n00000|+1||||"))
	assert.ErrorIs(err, ErrSequentialLast)
}

func TestResolveAddressInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, address := range []string{"", "0001", "0000x", "000001"} {
		table := parse(t,
			"00000|+1||||",
			address+"|||||",
		)

		err := table.Resolve()

		var invalid *ErrAddressInvalid
		if assert.True(errors.As(err, &invalid), address) {
			assert.Equal(address, invalid.Address)
			assert.Equal(3, invalid.LineNo)
		}
	}

	// Malformed addresses nobody refers to are ignored.
	table := parse(t, "bogus|00000||||")
	assert.NoError(table.Resolve())
}

func TestWordsUnresolved(t *testing.T) {
	assert := assert.New(t)

	table := parse(t, "00000|+1||||", "00001|||||")

	words, err := table.Words()
	assert.Nil(words)
	assert.ErrorIs(err, ErrUnresolved)
}

func TestCompileDeterministic(t *testing.T) {
	assert := assert.New(t)

	source := header + "\n00000|+1|0|001|00001|01\n00001|00000|1|111|11111|11 # loop\n"

	first, err := (&Parser{}).Compile(strings.NewReader(source))
	assert.NoError(err)
	second, err := (&Parser{}).Compile(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(first, second)

	words, err := first.Words()
	assert.NoError(err)
	assert.Equal([]Word{0x0885, 0x07FF}, words)
}

func TestParseField(t *testing.T) {
	assert := assert.New(t)

	field, err := ParseField("alu_op", "", ALU_WIDTH)
	assert.NoError(err)
	assert.Equal(Field{Width: ALU_WIDTH}, field)
	assert.Equal("000", field.String())

	field, err = ParseField("alu_op", "101", ALU_WIDTH)
	assert.NoError(err)
	assert.Equal(uint16(5), field.Value)

	_, err = ParseField("alu_op", "10", ALU_WIDTH)
	assert.EqualError(err, "alu_op '10' is not 3 binary digits")

	_, err = ParseField("alu_op", "+01", ALU_WIDTH)
	assert.Error(err)
}

func TestWordUnpack(t *testing.T) {
	assert := assert.New(t)

	next, jump, alu, write, bus := Word(0x0582).Unpack()
	assert.Equal("00000", next.String())
	assert.Equal("1", jump.String())
	assert.Equal("011", alu.String())
	assert.Equal("00000", write.String())
	assert.Equal("10", bus.String())
}

func FuzzWord(f *testing.F) {
	f.Add(uint16(0))
	f.Add(uint16(0xffff))
	f.Add(uint16(0x0805))

	f.Fuzz(func(t *testing.T, value uint16) {
		next, jump, alu, write, bus := Word(value).Unpack()

		entry := &Entry{Next: NextAddress{Field: next}, Jump: jump, Alu: alu, Write: write, Bus: bus}
		word, err := entry.Word()
		assert.NoError(t, err)
		assert.Equal(t, Word(value), word)

		var text string
		for _, field := range entry.Fields() {
			text += field.String()
		}
		assert.Equal(t, word.String(), text)
	})
}
