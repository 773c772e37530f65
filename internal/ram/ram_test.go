package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAM(t *testing.T) {
	r := NewRAM(0x7F)
	assert.Equal(t, 0x7F, r.Size())
	assert.Equal(t, uint8(0), r.Read(0x7E))

	r.Write(0x7E, 0x42)
	assert.Equal(t, uint8(0x42), r.Read(0x7E))
	assert.Panics(t, func() { r.Read(0x7F) })
}
