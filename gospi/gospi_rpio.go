//go:build linux
// +build linux

package gospi

import (
	rpio "github.com/stianeikeland/go-rpio/v4"
)

/* Raspberry Pi backend using the BCM283x SPI controller directly. The
   chip select, write protect and hold lines are ordinary GPIOs here so
   the driver can run them explicitly; the controller's own CE pins stay
   unconnected. */

type rpioSPI struct {
	dev rpio.SpiDev
}

func OpenRPIO(dev rpio.SpiDev, speedHz int) (SPIDevice, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}

	if err := rpio.SpiBegin(dev); err != nil {
		rpio.Close()
		return nil, err
	}

	rpio.SpiSpeed(speedHz)

	return &rpioSPI{dev: dev}, nil
}

func (s *rpioSPI) Transmit(b []byte) error {
	rpio.SpiTransmit(b...)
	return nil
}

func (s *rpioSPI) Receive(b []byte) error {
	copy(b, rpio.SpiReceive(len(b)))
	return nil
}

func (s *rpioSPI) Close() error {
	rpio.SpiEnd(s.dev)
	return rpio.Close()
}

type rpioPin struct {
	pin rpio.Pin
}

func OpenRPIOPin(bcm int) PinOut {
	pin := rpio.Pin(bcm)
	pin.Output()
	return &rpioPin{pin: pin}
}

func (p *rpioPin) Set(high bool) error {
	if high {
		p.pin.High()
	} else {
		p.pin.Low()
	}
	return nil
}
