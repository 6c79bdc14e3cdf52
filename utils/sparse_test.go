package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOK(t *testing.T) {
	A := NewDOK(3, 3)
	A.SetName("A")
	A.Set(0, 0, 2)
	A.AddAt(0, 0, 3)
	assert.Equal(t, 5.0, A.At(0, 0))
	assert.Equal(t, 0.0, A.At(1, 2))

	nr, nc := A.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 3, nc)

	assert.Panics(t, func() { A.Set(3, 0, 1) })
	assert.Panics(t, func() { A.AddAt(0, -1, 1) })

	csr := A.ToCSR()
	assert.Equal(t, 5.0, csr.At(0, 0))
}
