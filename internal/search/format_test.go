package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSlots(t *testing.T) {
	tests := []struct {
		name string
		caps []string
		want []string
	}{
		{"two groups drop the whole match", []string{"foo=1", "foo", "1"}, []string{"foo", "1"}},
		{"one group drops the whole match", []string{"foo=", "foo"}, []string{"foo"}},
		{"no groups keeps the whole match", []string{"aaa"}, []string{"aaa"}},
		{"non-participating group kept as empty slot", []string{"b", "", "b"}, []string{"", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupSlots(tt.caps))
		})
	}
}

func TestJoinGroups(t *testing.T) {
	assert.Equal(t, "foo,1", joinGroups([]string{"foo", "1"}))
	assert.Equal(t, ",b", joinGroups([]string{"", "b"}))
	assert.Equal(t, "aaa", joinGroups([]string{"aaa"}))
	assert.Equal(t, "a,,c", joinGroups([]string{"a", "", "c"}))
}
