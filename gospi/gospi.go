package gospi

import "errors"

/* ErrorBusy signals transient contention on the bus. Callers may retry
   the transfer; any other error is a hard fault. */
var ErrorBusy = errors.New("SPI transport is busy")

type SPIDevice interface {
	Transmit(b []byte) error
	Receive(b []byte) error
	Close() error
}

type PinOut interface {
	Set(high bool) error
}

func OpenSPI(name string, speedHz int64) (SPIDevice, error) {
	return openSPIPeriph(name, speedHz)
}

func OpenPin(name string) (PinOut, error) {
	return openPinPeriph(name)
}
