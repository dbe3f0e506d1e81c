package eehal

import (
	"time"

	"github.com/BertoldVdb/eeprom-tools/gospi"
)

/* retryBusy runs fn up to attempts times, sleeping delay between tries,
   as long as the transport reports contention. The last observed status
   is carried out when the attempts run out. */
func (h *HAL) retryBusy(attempts int, delay time.Duration, fn func() error) error {
	var err error

	for i := 0; i < attempts; i++ {
		err = fn()
		if err != gospi.ErrorBusy {
			break
		}

		h.delay(delay)
	}

	return err
}
