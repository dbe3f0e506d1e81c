package main

import (
	"fmt"

	"github.com/fatih/color"
)

func hexdump(offset int, data []byte, mark []bool) string {
	var result string
	red := color.New(color.FgRed)

	for len(data) > 0 {
		l := len(data)
		if l > 16 {
			l = 16
		}
		work := data[:l]
		data = data[l:]
		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex string
		var workAscii string
		for i := 0; i < 16; i++ {
			if i >= len(work) {
				workHex += "   "
				workAscii += " "
				if i%8 == 7 {
					workHex += " "
				}
				continue
			}

			m := work[i]
			delta := workMark != nil && workMark[i]

			if delta {
				workHex += red.Sprintf("%02x ", m)
			} else {
				workHex += fmt.Sprintf("%02x ", m)
			}

			if m < 32 || m > 126 {
				m = '.'
			}
			if delta {
				workAscii += red.Sprintf("%c", m)
			} else {
				workAscii += fmt.Sprintf("%c", m)
			}

			if i%8 == 7 {
				workHex += " "
			}
		}

		result += fmt.Sprintf("%04x  %s|%s|\n", offset, workHex, workAscii)
		offset += l
	}

	return result
}
