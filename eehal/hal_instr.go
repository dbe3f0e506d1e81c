package eehal

import (
	"encoding/hex"

	"github.com/BertoldVdb/eeprom-tools/gospi"
)

/* Instruction set of the ST95xx/25xx series parts */
const (
	opWRSR  = 0x01 /* Write status register */
	opWRITE = 0x02
	opREAD  = 0x03
	opWRDI  = 0x04 /* Reset write enable latch */
	opRDSR  = 0x05 /* Read status register */
	opWREN  = 0x06 /* Set write enable latch */

	statusWIP = 1 << 0 /* Write cycle in progress */
	statusWEL = 1 << 1 /* Write enable latch */
)

/* Read and write headers carry a big endian 16 bit address. */
func makeHeader(op byte, addr int) [3]byte {
	return [3]byte{op, byte(addr >> 8), byte(addr)}
}

/* SendInstruction transmits a prepared command frame. The chip select
   line is not touched so multi part transactions can be built from it.
   A hard fault here means the bus itself is broken: it is escalated to
   FatalFunc and returned. */
func (h *HAL) SendInstruction(buf []byte) error {
	h.logf(3, "SPIOut:   %s", hex.EncodeToString(buf))

	err := h.dev.Transmit(buf)
	if err != nil && err != gospi.ErrorBusy && h.config.FatalFunc != nil {
		h.config.FatalFunc(err)
	}

	return err
}

/* commandFrame pulses chip select around a single frame. */
func (h *HAL) commandFrame(frame []byte) error {
	if err := h.ChipSelect(true); err != nil {
		return err
	}

	err := h.SendInstruction(frame)

	if csErr := h.ChipSelect(false); err == nil {
		err = csErr
	}
	return err
}
