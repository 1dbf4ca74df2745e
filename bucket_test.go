package hashset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketAdd(t *testing.T) {
	var b bucket[string]
	assert.False(t, b.contains("a"))

	assert.True(t, b.add("a"))
	assert.True(t, b.add("b"))
	assert.False(t, b.add("a"), "duplicate add must be rejected")

	assert.Equal(t, []string{"a", "b"}, b.items)
	assert.Equal(t, 2, b.len())
}

func TestBucketPushSkipsDuplicateCheck(t *testing.T) {
	var b bucket[int]
	b.push(1)
	b.push(1)
	assert.Equal(t, []int{1, 1}, b.items)
}
