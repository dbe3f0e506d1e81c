package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/eeprom-tools/eehal"
	"github.com/BertoldVdb/eeprom-tools/gospi"
	"github.com/alecthomas/kong"
)

type Context struct {
	dev gospi.SPIDevice
	hal *eehal.HAL
}

var CLI struct {
	SPIName string `optional:"" help:"SPI port (periph.io spireg name), empty for the first one."`
	Speed   int64  `optional:"" help:"SPI clock in Hz." default:"1000000"`
	CSPin   string `optional:"" help:"Chip select GPIO name." default:"GPIO8"`
	WPPin   string `optional:"" help:"Write protect GPIO name." default:"GPIO22"`
	HoldPin string `optional:"" help:"Hold GPIO name." default:"GPIO27"`

	PageSize int `optional:"" help:"EEPROM page size in bytes." default:"32"`
	Capacity int `optional:"" help:"EEPROM capacity in bytes." default:"8192"`

	Strict   bool `optional:"" help:"Propagate transport faults on read and status paths."`
	LogLevel int  `optional:"" help:"Higher values give more output."`

	Info      InfoCmd      `cmd:"" help:"Show device geometry."`
	Read      ReadCmd      `cmd:"" help:"Read and dump memory."`
	Write     WriteCmd     `cmd:"" help:"Write value to memory."`
	WriteFile WriteFileCmd `cmd:"" name:"write-file" help:"Write file to memory."`
	Checksum  ChecksumCmd  `cmd:"" help:"CRC-16 checksum of a memory span."`

	Status      StatusCmd      `cmd:"" help:"Read the status register."`
	StatusWrite StatusWriteCmd `cmd:"" name:"status-write" help:"Write the status register."`
	Wait        WaitCmd        `cmd:"" help:"Wait until the device finishes its write cycle."`
	Raw         RawCmd         `cmd:"" help:"Send a raw instruction frame."`

	WP   WPCmd   `cmd:"" name:"wp" help:"Drive the write protect line."`
	Hold HoldCmd `cmd:"" name:"hold" help:"Drive the hold line."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.NamedMapper("int", intMapper{}),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	dev, cs, wp, hold, err := OpenDevice()
	if err != nil {
		fmt.Println("Failed to open device", err)
		return
	}
	defer dev.Close()

	config := eehal.HALConfig{
		PageSize: CLI.PageSize,
		Capacity: CLI.Capacity,

		StrictTransport: CLI.Strict,

		LogFunc: func(level int, format string, param ...interface{}) {
			if level > CLI.LogLevel {
				return
			}
			str := fmt.Sprintf(format, param...)
			fmt.Printf("HAL(%d): %s\n", level, str)
		},
	}

	c := &Context{dev: dev}
	c.hal, err = eehal.New(dev, cs, wp, hold, config)
	if err != nil {
		fmt.Println("Failed to create HAL", err)
		return
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
