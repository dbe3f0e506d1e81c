package gospi

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var hostReady bool

func hostInit() error {
	if hostReady {
		return nil
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	hostReady = true
	return nil
}

type periphSPI struct {
	port spi.PortCloser
	conn spi.Conn
}

func openSPIPeriph(name string, speedHz int64) (SPIDevice, error) {
	if err := hostInit(); err != nil {
		return nil, err
	}

	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	/* The driver runs the chip select line itself, so take the port
	   without hardware CS. The device wants mode 0. */
	conn, err := port.Connect(physic.Frequency(speedHz)*physic.Hertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		port.Close()
		return nil, err
	}

	return &periphSPI{
		port: port,
		conn: conn,
	}, nil
}

func (s *periphSPI) Transmit(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return s.conn.Tx(b, nil)
}

func (s *periphSPI) Receive(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return s.conn.Tx(nil, b)
}

func (s *periphSPI) Close() error {
	return s.port.Close()
}

type periphPin struct {
	pin gpio.PinOut
}

func openPinPeriph(name string) (PinOut, error) {
	if err := hostInit(); err != nil {
		return nil, err
	}

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}

	return &periphPin{pin: pin}, nil
}

func (p *periphPin) Set(high bool) error {
	return p.pin.Out(gpio.Level(high))
}
