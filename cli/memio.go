package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/BertoldVdb/eeprom-tools/eehal"
	"github.com/inancgumus/screen"
	"github.com/sigurn/crc16"
)

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

/* spanAmount resolves an address/amount argument pair against the
   region size. Zero means the rest of the region from addr on. */
func spanAmount(length, addr, amount int) (int, error) {
	if addr < 0 || addr >= length {
		return 0, errors.New("Address is outside the device")
	}
	if amount < 0 {
		return 0, errors.New("Amount is negative")
	}
	if amount == 0 {
		amount = length - addr
	}
	return amount, nil
}

type InfoCmd struct {
}

func (l *InfoCmd) Run(c *Context) error {
	region := c.hal.MemoryRegion()

	fmt.Printf("Region       |     Length | Page size\n")
	fmt.Printf("%-13s|      %5d |      %5d\n", region.GetName(), region.GetLength(), c.hal.PageSize())
	return nil
}

type ReadCmd struct {
	Loop     int    `optional:"" help:"0=Perform once, 1=Mark changes since start, 2=Mark changes since previous iteration."`
	Filename string `optional:"" help:"File to write dump to."`

	Addr   int `arg:"" name:"addr" help:"Address to read from." type:"int"`
	Amount int `arg:"" name:"amount" help:"Number of bytes to read, omit for the rest of the device." optional:"" default:"0"`
}

func (l *ReadCmd) Run(c *Context) error {
	if l.Loop < 0 || l.Loop > 2 {
		return errors.New("Loop flag out of range")
	}

	region := c.hal.MemoryRegion()

	amount, err := spanAmount(region.GetLength(), l.Addr, l.Amount)
	if err != nil {
		return err
	}
	l.Amount = amount

	var oldBuf []byte
	var mark []bool
	for {
		startTime := time.Now()
		if l.Loop == 2 || mark == nil {
			mark = make([]bool, l.Amount)
		}

		buf := make([]byte, l.Amount)
		n, err := region.Access(false, l.Addr, buf)
		if err != nil {
			return fmt.Errorf("Read error: %s", err.Error())
		}
		buf = buf[:n]

		if l.Filename != "" {
			return ioutil.WriteFile(l.Filename, buf, 0644)
		}

		if l.Amount == 1 {
			if len(buf) < 1 {
				return errors.New("0 bytes returned")
			}
			fmt.Printf("0x%02x\n", buf[0])
		} else {
			if l.Loop != 0 {
				screen.Clear()
				screen.MoveTopLeft()
				if oldBuf != nil {
					for i, m := range oldBuf {
						if m != buf[i] {
							mark[i] = true
						}
					}
				}
			}
			fmt.Println(hexdump(l.Addr, buf, mark))
		}

		oldBuf = buf

		if l.Loop == 0 {
			break
		}
		d := time.Now().Sub(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}

	return nil
}

type WriteCmd struct {
	Addr  int `arg:"" name:"addr" help:"Address to write to." type:"int"`
	Value int `arg:"" name:"value" help:"Value to write." type:"int"`
}

func (w WriteCmd) Run(c *Context) error {
	return eehal.WriteByte(c.hal.MemoryRegion(), w.Addr, byte(w.Value))
}

type WriteFileCmd struct {
	Addr     int    `arg:"" name:"addr" help:"Address to write to." type:"int"`
	Filename string `arg:"" name:"filename" help:"File to read data from."`

	Verify bool `optional:"" name:"verify" help:"Read back and verify the written file."`
}

func (w WriteFileCmd) Run(c *Context) error {
	data, err := ioutil.ReadFile(w.Filename)
	if err != nil {
		return err
	}

	region := c.hal.MemoryRegion()

	n, err := region.Access(true, w.Addr, data)
	if n > 0 {
		fmt.Printf("Wrote %d bytes to 0x%04x.\n", n, w.Addr)
	}
	if err != nil {
		return err
	}

	if w.Verify {
		readback := make([]byte, n)
		if _, err := region.Access(false, w.Addr, readback); err != nil {
			return err
		}

		if !bytes.Equal(readback, data[:n]) {
			return errors.New("Failed to verify write")
		}

		fmt.Printf("Verification OK, CRC-16 %04x.\n", crc16.Checksum(readback, crcTable))
	}

	return nil
}

type ChecksumCmd struct {
	Addr   int `arg:"" name:"addr" help:"Address to start from." type:"int"`
	Amount int `arg:"" name:"amount" help:"Number of bytes, omit for the rest of the device." optional:"" default:"0"`
}

func (l *ChecksumCmd) Run(c *Context) error {
	region := c.hal.MemoryRegion()

	amount, err := spanAmount(region.GetLength(), l.Addr, l.Amount)
	if err != nil {
		return err
	}

	buf := make([]byte, amount)
	n, err := region.Access(false, l.Addr, buf)
	if err != nil {
		return err
	}

	fmt.Printf("CRC-16 of 0x%04x+%d: %04x\n", l.Addr, n, crc16.Checksum(buf[:n], crcTable))
	return nil
}
