package eehal

import (
	"time"

	"github.com/BertoldVdb/eeprom-tools/gospi"
)

type LogFunc func(level int, format string, param ...interface{})

/* HAL drives a single SPI EEPROM (ST95xx/25xx class). It owns the bus,
   the chip select line and the write protect / hold lines for the
   duration of every call. There is no internal locking: operations are
   fully synchronous and callers using multiple goroutines must serialize
   access themselves, or the chip select line will race. */
type HAL struct {
	dev gospi.SPIDevice

	pinCS   gospi.PinOut
	pinWP   gospi.PinOut
	pinHold gospi.PinOut

	pageSize int
	capacity int

	config HALConfig
}

type HALConfig struct {
	/* PageSize must be a power of two. Capacity must be a multiple of
	   the page size and addressable with 16 bits. Zero selects the
	   defaults (an ST95640 class part). */
	PageSize int
	Capacity int

	/* By default the read and status paths log transport faults and
	   report success, the lenient behavior embedded firmware tends to
	   rely on. StrictTransport propagates the real transport result
	   instead. */
	StrictTransport bool

	/* Upper bound on waiting for a write cycle to finish. Zero selects
	   DefaultStandbyTimeout, negative waits forever. */
	StandbyTimeout time.Duration

	LogFunc   LogFunc
	DelayFunc func(time.Duration)

	/* Called when the low level instruction exchange hits a hard
	   transport fault. On bare metal this was process fatal; here the
	   error is returned as well. */
	FatalFunc func(error)
}

const (
	DefaultPageSize = 32
	DefaultCapacity = 8192

	DefaultStandbyTimeout = 5 * time.Second
)

func New(dev gospi.SPIDevice, cs, wp, hold gospi.PinOut, config HALConfig) (*HAL, error) {
	if config.PageSize == 0 {
		config.PageSize = DefaultPageSize
	}
	if config.Capacity == 0 {
		config.Capacity = DefaultCapacity
	}

	if config.PageSize <= 0 || config.PageSize&(config.PageSize-1) != 0 {
		return nil, ErrorInvalidConfig
	}
	if config.Capacity < config.PageSize || config.Capacity%config.PageSize != 0 || config.Capacity > 0x10000 {
		return nil, ErrorInvalidConfig
	}

	h := &HAL{
		dev:     dev,
		pinCS:   cs,
		pinWP:   wp,
		pinHold: hold,

		pageSize: config.PageSize,
		capacity: config.Capacity,

		config: config,
	}

	/* Known line state before the first transfer: chip deselected,
	   write protect and hold released */
	if err := h.ChipSelect(false); err != nil {
		return nil, err
	}
	if err := h.WriteProtect(false); err != nil {
		return nil, err
	}
	if err := h.Hold(false); err != nil {
		return nil, err
	}

	h.logf(1, "EEPROM HAL ready: %d byte pages, %d bytes total", h.pageSize, h.capacity)

	return h, nil
}

func (h *HAL) PageSize() int {
	return h.pageSize
}

func (h *HAL) Capacity() int {
	return h.capacity
}

func (h *HAL) checkSpan(addr int, length int) error {
	if addr < 0 || length < 0 || addr+length > h.capacity {
		return ErrorOutOfRange
	}
	return nil
}

func (h *HAL) logf(level int, format string, param ...interface{}) {
	if h.config.LogFunc != nil {
		h.config.LogFunc(level, format, param...)
	}
}

func (h *HAL) delay(d time.Duration) {
	if h.config.DelayFunc != nil {
		h.config.DelayFunc(d)
		return
	}
	time.Sleep(d)
}

/* softFault implements the legacy fault policy: read and status results
   were reported as success regardless of the transport outcome. */
func (h *HAL) softFault(op string, err error) error {
	if h.config.StrictTransport {
		return err
	}

	h.logf(1, "Ignoring %s fault: %v", op, err)
	return nil
}
