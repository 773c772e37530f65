package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService(t *testing.T) {
	s := NewService()
	assert.Equal(t, uint8(0xE0), s.ReadFlag())
	assert.False(t, s.HasInterrupts())

	s.Request(TimerFlag)
	assert.Equal(t, uint8(0xE4), s.ReadFlag())
	assert.False(t, s.HasInterrupts())

	s.Enable = TimerFlag | VBlankFlag
	assert.True(t, s.HasInterrupts())

	s.WriteFlag(0xFF)
	assert.Equal(t, uint8(0x1F), s.Flag)
	assert.Equal(t, uint8(0xFF), s.ReadFlag())
}
