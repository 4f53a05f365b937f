package internal

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqFlatten(t *testing.T) {
	assert := assert.New(t)

	codes := [][]byte{{1, 2}, {}, {3}}
	var visited int
	seq := SeqFlatten(slices.Values(codes), func(code []byte) iter.Seq[byte] {
		visited++
		return slices.Values(code)
	})
	assert.Equal([]byte{1, 2, 3}, slices.Collect(seq))
	assert.Equal(3, visited)

	// Early stop does not visit the rest of outer.
	visited = 0
	var got []byte
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]byte{1, 2}, got)
	assert.Equal(1, visited)

	assert.Empty(slices.Collect(SeqFlatten(slices.Values([][]byte(nil)), slices.Values[[]byte])))
}

func TestSeqIndex(t *testing.T) {
	assert := assert.New(t)

	var index []int
	var value []string
	for n, v := range SeqIndex(slices.Values([]string{"a", "b", "c"})) {
		index = append(index, n)
		value = append(value, v)
		if n == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, index)
	assert.Equal([]string{"a", "b"}, value)
}
