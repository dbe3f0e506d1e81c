package main

import (
	"github.com/BertoldVdb/eeprom-tools/gospi"
)

func OpenDevice() (gospi.SPIDevice, gospi.PinOut, gospi.PinOut, gospi.PinOut, error) {
	dev, err := gospi.OpenSPI(CLI.SPIName, CLI.Speed)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var pins [3]gospi.PinOut
	for i, name := range []string{CLI.CSPin, CLI.WPPin, CLI.HoldPin} {
		pins[i], err = gospi.OpenPin(name)
		if err != nil {
			dev.Close()
			return nil, nil, nil, nil, err
		}
	}

	return dev, pins[0], pins[1], pins[2], nil
}
