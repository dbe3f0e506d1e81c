package eehal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBufferAcrossPages(t *testing.T) {
	h, fake := newTestHAL(t, 32, 1024, HALConfig{})
	copy(fake.mem, pattern(1024))

	/* Reads stream across page boundaries in one transaction. */
	buf := make([]byte, 60)
	require.NoError(t, h.ReadBuffer(buf, 10))
	assert.Equal(t, fake.mem[10:70], buf)
	assert.Equal(t, []string{"READ"}, fake.log)
}

func TestReadBufferBusyRetry(t *testing.T) {
	h, fake := newTestHAL(t, 32, 1024, HALConfig{})
	copy(fake.mem, pattern(1024))
	fake.busyReceive = 3

	buf := make([]byte, 16)
	require.NoError(t, h.ReadBuffer(buf, 0))
	assert.Equal(t, fake.mem[:16], buf)
	assert.Equal(t, 3, fake.busySeen)
}

func TestReadBufferFaultPolicy(t *testing.T) {
	/* Legacy mode swallows receive faults and reports success. */
	h, fake := newTestHAL(t, 32, 1024, HALConfig{})
	fake.receiveErr = errors.New("bus fault")

	buf := make([]byte, 16)
	require.NoError(t, h.ReadBuffer(buf, 0))

	h, fake = newTestHAL(t, 32, 1024, HALConfig{StrictTransport: true})
	fake.receiveErr = errors.New("bus fault")
	assert.Equal(t, fake.receiveErr, h.ReadBuffer(buf, 0))
}

func TestReadBufferBounds(t *testing.T) {
	h, fake := newTestHAL(t, 32, 1024, HALConfig{})

	buf := make([]byte, 100)
	assert.Equal(t, ErrorOutOfRange, h.ReadBuffer(buf, 1000))
	assert.Equal(t, ErrorOutOfRange, h.ReadBuffer(buf[:1], -1))

	require.NoError(t, h.ReadBuffer(nil, 0))
	assert.Empty(t, fake.log)
}
