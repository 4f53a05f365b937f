// Package asm assembles mc8 source text into a 256-byte program image.
//
// Assembly is a single pass. Each line is stripped of its comment and
// matched against the isa catalog; the first matching rule emits one or two
// bytes. Lines that match no rule are dropped. Operands are integer
// literals with an optional 0x, 0b or 0d radix prefix, or a $(...)
// expression evaluated at assembly time.
//
// The Program collects the emitted bytes; Program.Image zero-pads them into
// the fixed-size Image, failing if the program does not fit.
package asm
