package eehal

import "time"

const (
	writeAttempts  = 5
	writeBusyDelay = 5 * time.Millisecond
)

func (h *HAL) WriteEnable() error {
	return h.commandFrame([]byte{opWREN})
}

func (h *HAL) WriteDisable() error {
	return h.commandFrame([]byte{opWRDI})
}

/* WritePage performs one device write cycle: set the write enable latch,
   send the header and payload in a single chip select window, wait for
   the internal cycle to finish, clear the latch. The payload must fit in
   the page addr falls in; splitting is WriteBuffer's job and the boundary
   is not re-checked here. */
func (h *HAL) WritePage(buf []byte, addr int) error {
	if len(buf) > h.pageSize {
		return ErrorWriteTooLong
	}
	if len(buf) == 0 {
		return nil
	}

	if err := h.WriteEnable(); err != nil {
		return err
	}

	err := h.ChipSelect(true)
	if err == nil {
		header := makeHeader(opWRITE, addr)
		err = h.SendInstruction(header[:])
	}

	if err == nil {
		/* The transport can report contention under load, so the
		   payload transmit gets a few tries. */
		err = h.retryBusy(writeAttempts, writeBusyDelay, func() error {
			return h.dev.Transmit(buf)
		})
	}

	if csErr := h.ChipSelect(false); err == nil {
		err = csErr
	}

	/* Run the write cycle out even after a failed transmit, so the
	   device is not left busy for the next operation. */
	if waitErr := h.WaitStandby(); err == nil {
		err = waitErr
	}

	if wrdiErr := h.WriteDisable(); err == nil {
		err = wrdiErr
	}

	if err == nil {
		h.logf(2, "Wrote %d bytes to 0x%04x", len(buf), addr)
	}

	return err
}

/* WriteBuffer writes buf to the device starting at addr. The device's
   internal address counter wraps within the current page instead of
   advancing into the next one, so a write cycle that crosses a page
   boundary silently corrupts the start of the page. The request is split
   into boundary safe cycles: the first runs up to the next boundary (or
   covers everything if it fits), interior cycles are whole pages, and a
   short tail is flushed last.

   Cycles are issued in ascending address order and the first failing
   cycle aborts the remainder. Bytes already written stay written; the
   caller can retry from the failed point. */
func (h *HAL) WriteBuffer(buf []byte, addr int) error {
	if err := h.checkSpan(addr, len(buf)); err != nil {
		return err
	}

	for len(buf) > 0 {
		chunk := h.pageSize - addr%h.pageSize
		if chunk > len(buf) {
			chunk = len(buf)
		}

		if err := h.WritePage(buf[:chunk], addr); err != nil {
			return err
		}

		addr += chunk
		buf = buf[chunk:]
	}

	return nil
}
