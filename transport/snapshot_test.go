package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemblerConcatenatesHeaderAndPayload(t *testing.T) {
	a := NewAssembler()
	defer a.Release()

	got := a.Assemble([]byte{1, 2, 3}, []byte{4, 5})
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestAssemblerReusableAcrossCalls(t *testing.T) {
	a := NewAssembler()
	defer a.Release()

	first := a.Assemble([]byte{1}, []byte{2})
	assert.Equal(t, []byte{1, 2}, first)

	second := a.Assemble([]byte{9, 9}, []byte{8})
	assert.Equal(t, []byte{9, 9, 8}, second)
}
