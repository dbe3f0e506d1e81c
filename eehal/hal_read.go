package eehal

import "time"

const (
	readAttempts  = 100
	readBusyDelay = time.Millisecond
)

/* ReadBuffer fills buf from the device starting at addr. Reads are not
   page bound: the device streams sequentially across page boundaries as
   long as chip select stays low. Transport faults follow the
   StrictTransport policy. */
func (h *HAL) ReadBuffer(buf []byte, addr int) error {
	if err := h.checkSpan(addr, len(buf)); err != nil {
		return err
	}
	if len(buf) == 0 {
		return nil
	}

	if err := h.ChipSelect(true); err != nil {
		return err
	}
	defer h.ChipSelect(false)

	header := makeHeader(opREAD, addr)
	if err := h.SendInstruction(header[:]); err != nil {
		return h.softFault("read", err)
	}

	err := h.retryBusy(readAttempts, readBusyDelay, func() error {
		return h.dev.Receive(buf)
	})
	if err != nil {
		return h.softFault("read", err)
	}

	h.logf(2, "Read %d bytes from 0x%04x", len(buf), addr)
	return nil
}
