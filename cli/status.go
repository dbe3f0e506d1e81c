package main

import (
	"encoding/hex"
	"fmt"
)

type StatusCmd struct {
}

func (s *StatusCmd) Run(c *Context) error {
	value, err := c.hal.ReadStatusRegister()
	if err != nil {
		return err
	}

	fmt.Printf("Status: 0x%02x (WIP=%d WEL=%d)\n", value, value&1, value>>1&1)
	return nil
}

type StatusWriteCmd struct {
	Value int `arg:"" name:"value" help:"Value to write." type:"int"`
}

func (s *StatusWriteCmd) Run(c *Context) error {
	return c.hal.WriteStatusRegister(byte(s.Value))
}

type WaitCmd struct {
}

func (w *WaitCmd) Run(c *Context) error {
	return c.hal.WaitStandby()
}

type RawCmd struct {
	Data string `arg:"" name:"value" help:"Instruction frame as hex."`
}

func (w RawCmd) Run(c *Context) error {
	buf, err := hex.DecodeString(w.Data)
	if err != nil {
		return err
	}

	if err := c.hal.ChipSelect(true); err != nil {
		return err
	}
	err = c.hal.SendInstruction(buf)
	if csErr := c.hal.ChipSelect(false); err == nil {
		err = csErr
	}
	if err != nil {
		return err
	}

	fmt.Println("Sent raw frame:", hex.EncodeToString(buf))
	return nil
}
