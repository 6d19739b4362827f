package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	first := slices.All([]string{"a", "b"})
	second := slices.All([]string{"c"})

	var values []string
	for _, value := range Concat2(first, second) {
		values = append(values, value)
	}
	assert.Equal([]string{"a", "b", "c"}, values)

	// Early exit stops all sequences.
	values = nil
	for _, value := range Concat2(first, second) {
		values = append(values, value)
		break
	}
	assert.Equal([]string{"a"}, values)

	assert.Equal(map[string]int{"x": 1, "y": 2}, maps.Collect(Concat2(
		maps.All(map[string]int{"x": 1}),
		maps.All(map[string]int{"y": 2}),
	)))
}
