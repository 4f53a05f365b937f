// Package micro compiles mc8 microprograms into control-store words.
//
// A microprogram is a header line followed by one row per control-store
// address:
//
//	address|next_address|jump_condition|alu_op|write_lines|bus_select
//
// Every field is a binary string of fixed width; blank fields are zero.
// The next address may be "+1", meaning the address of the following row.
//
// Compilation is two passes. Parser.Parse builds the Table, then
// Table.Resolve replaces every "+1" with the literal address of the row
// after it. Each resolved Entry packs into a 16-bit Word:
//
//	next(5) | jump(1) | alu(3) | write(5) | bus(2)
package micro
