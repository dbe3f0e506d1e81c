package main

import (
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

/* intMapper decodes numeric flags and positionals. With base 0 ParseInt
   picks the base from the literal, so plain decimal and 0x prefixed
   addresses both work; a fixed base forces the interpretation. */
type intMapper struct {
	base int
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var raw string
	if err := ctx.Scan.PopValueInto("number", &raw); err != nil {
		return err
	}

	value, err := strconv.ParseInt(raw, h.base, 64)
	if err != nil {
		return err
	}

	target.SetInt(value)
	return nil
}
