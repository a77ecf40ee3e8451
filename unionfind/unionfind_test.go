package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Union_Find(t *testing.T) {
	assert := assert.New(t)

	u := New(6)
	u.Union(0, 1)
	u.Union(1, 2)
	u.Union(4, 5)

	assert.Equal(u.Find(0), u.Find(2), "0 and 2 should have merged transitively through 1")
	assert.NotEqual(u.Find(0), u.Find(3))
	assert.Equal(u.Find(4), u.Find(5))
}

func Test_Closure(t *testing.T) {
	assert := assert.New(t)

	u := New(5)
	u.Union(0, 1)
	u.Union(1, 2)

	closure := u.Closure()

	assert.Len(closure[0], 3)
	assert.Contains(closure[0], 0)
	assert.Contains(closure[0], 1)
	assert.Contains(closure[0], 2)
	assert.Len(closure[3], 1)
	assert.Len(closure[4], 1)
}

func Test_Find_outOfRange_panics(t *testing.T) {
	assert := assert.New(t)

	u := New(2)
	assert.Panics(func() {
		u.Find(7)
	})
}
