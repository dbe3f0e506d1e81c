package eehal

/* All three control lines are active low on the device. The helpers take
   logical intent and drive the matching level. */

func (h *HAL) ChipSelect(selected bool) error {
	return h.pinCS.Set(!selected)
}

func (h *HAL) WriteProtect(enabled bool) error {
	return h.pinWP.Set(!enabled)
}

func (h *HAL) Hold(held bool) error {
	return h.pinHold.Set(!held)
}
