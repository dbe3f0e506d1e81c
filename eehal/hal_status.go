package eehal

import (
	"time"

	"github.com/BertoldVdb/eeprom-tools/gospi"
)

const statusPollDelay = time.Millisecond

/* WaitStandby polls the status register until the device finishes its
   internal write cycle. The wait is bounded by HALConfig.StandbyTimeout
   and surfaces ErrorTimeout when the flag never clears; transport faults
   follow the StrictTransport policy. */
func (h *HAL) WaitStandby() error {
	var deadline time.Time

	timeout := h.config.StandbyTimeout
	if timeout == 0 {
		timeout = DefaultStandbyTimeout
	}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	if err := h.ChipSelect(true); err != nil {
		return err
	}
	defer h.ChipSelect(false)

	if err := h.SendInstruction([]byte{opRDSR}); err != nil {
		return h.softFault("status poll", err)
	}

	/* The device keeps streaming the status register as long as chip
	   select stays low, so one header serves the whole poll loop. */
	for {
		var status [1]byte

		err := h.dev.Receive(status[:])
		switch {
		case err == nil && status[0]&statusWIP == 0:
			return nil

		case err != nil && err != gospi.ErrorBusy:
			return h.softFault("status poll", err)
		}

		h.delay(statusPollDelay)

		if !deadline.IsZero() && time.Now().After(deadline) {
			return ErrorTimeout
		}
	}
}

func (h *HAL) ReadStatusRegister() (byte, error) {
	if err := h.ChipSelect(true); err != nil {
		return 0, err
	}
	defer h.ChipSelect(false)

	if err := h.SendInstruction([]byte{opRDSR}); err != nil {
		return 0, err
	}

	var status [1]byte
	err := h.retryBusy(writeAttempts, statusPollDelay, func() error {
		return h.dev.Receive(status[:])
	})

	return status[0], err
}

func (h *HAL) WriteStatusRegister(value byte) error {
	if err := h.WriteEnable(); err != nil {
		return err
	}

	if err := h.commandFrame([]byte{opWRSR, value}); err != nil {
		return err
	}

	return h.WriteDisable()
}
