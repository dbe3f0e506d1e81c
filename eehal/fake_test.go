package eehal

import (
	"errors"
	"testing"
	"time"

	"github.com/BertoldVdb/eeprom-tools/gospi"
	"github.com/stretchr/testify/require"
)

/* fakeEEPROM models the device end of the bus: an address counter that
   wraps within the current page during write cycles, a write enable
   latch, and a status register with the WIP flag. Busy and fault
   injection covers the transport contention paths. */
type fakeEEPROM struct {
	pageSize int
	mem      []byte

	selected bool
	wel      bool

	statusReg byte

	op           byte
	writeAddr    int
	readAddr     int
	curSeg       *segment
	payloadTried bool

	/* Completed write cycles keep showing WIP for this many status
	   reads afterwards. */
	wipPerWrite  int
	wipRemaining int

	segments      []segment
	log           []string
	writeCycles   int
	cycleAttempts int
	statusReads   int

	busyPayload int
	busyReceive int
	busySeen    int

	failOnCycle int
	injectedErr error
	receiveErr  error
}

type segment struct {
	addr int
	data []byte
}

func newFakeEEPROM(pageSize, capacity int) *fakeEEPROM {
	mem := make([]byte, capacity)
	for i := range mem {
		mem[i] = 0xFF
	}

	return &fakeEEPROM{
		pageSize:    pageSize,
		mem:         mem,
		wipPerWrite: 2,
		injectedErr: errors.New("injected transport fault"),
	}
}

func (f *fakeEEPROM) chipSelect(high bool) {
	selected := !high
	if selected == f.selected {
		return
	}
	f.selected = selected

	if selected {
		return
	}

	/* Transaction end */
	switch f.op {
	case opWRITE:
		if f.curSeg != nil {
			f.writeCycles++
			f.segments = append(f.segments, *f.curSeg)
			f.wipRemaining = f.wipPerWrite
			f.wel = false
		}
	case opWRSR:
		f.wipRemaining = f.wipPerWrite
		f.wel = false
	}

	f.op = 0
	f.curSeg = nil
	f.payloadTried = false
}

func (f *fakeEEPROM) Transmit(b []byte) error {
	if !f.selected {
		return errors.New("transmit while deselected")
	}
	if len(b) == 0 {
		return nil
	}

	if f.op == 0 {
		f.op = b[0]

		switch f.op {
		case opWREN:
			f.wel = true
			f.log = append(f.log, "WREN")
		case opWRDI:
			f.wel = false
			f.log = append(f.log, "WRDI")
		case opWRSR:
			if len(b) >= 2 && f.wel {
				f.statusReg = b[1]
			}
			f.log = append(f.log, "WRSR")
		case opRDSR:
			f.log = append(f.log, "RDSR")
		case opWRITE:
			f.writeAddr = int(b[1])<<8 | int(b[2])
			f.log = append(f.log, "WRITE")
		case opREAD:
			f.readAddr = int(b[1])<<8 | int(b[2])
			f.log = append(f.log, "READ")
		default:
			return errors.New("unknown instruction")
		}

		return nil
	}

	if f.op != opWRITE {
		return errors.New("unexpected payload transmit")
	}

	if !f.payloadTried {
		f.payloadTried = true
		f.cycleAttempts++
	}
	if f.busyPayload > 0 {
		f.busyPayload--
		f.busySeen++
		return gospi.ErrorBusy
	}
	if f.failOnCycle != 0 && f.failOnCycle == f.cycleAttempts {
		return f.injectedErr
	}

	if f.curSeg == nil {
		f.curSeg = &segment{addr: f.writeAddr}
	}

	for _, value := range b {
		if f.wel {
			f.mem[f.writeAddr] = value
		}
		f.curSeg.data = append(f.curSeg.data, value)

		/* The device increments within the current page only. */
		page := f.writeAddr &^ (f.pageSize - 1)
		f.writeAddr = page | ((f.writeAddr + 1) & (f.pageSize - 1))
	}

	return nil
}

func (f *fakeEEPROM) Receive(b []byte) error {
	if !f.selected {
		return errors.New("receive while deselected")
	}

	if f.busyReceive > 0 {
		f.busyReceive--
		f.busySeen++
		return gospi.ErrorBusy
	}
	if f.receiveErr != nil {
		return f.receiveErr
	}

	switch f.op {
	case opRDSR:
		status := f.statusReg
		if f.wipRemaining > 0 {
			f.wipRemaining--
			status |= statusWIP
		}
		if f.wel {
			status |= statusWEL
		}
		for i := range b {
			b[i] = status
		}
		f.statusReads++

	case opREAD:
		for i := range b {
			b[i] = f.mem[f.readAddr]
			f.readAddr = (f.readAddr + 1) % len(f.mem)
		}

	default:
		return errors.New("unexpected receive")
	}

	return nil
}

func (f *fakeEEPROM) Close() error {
	return nil
}

type fakePin struct {
	level bool
	onSet func(bool)
}

func (p *fakePin) Set(high bool) error {
	p.level = high
	if p.onSet != nil {
		p.onSet(high)
	}
	return nil
}

func newTestHAL(t *testing.T, pageSize, capacity int, config HALConfig) (*HAL, *fakeEEPROM) {
	t.Helper()

	fake := newFakeEEPROM(pageSize, capacity)

	config.PageSize = pageSize
	config.Capacity = capacity
	if config.DelayFunc == nil {
		config.DelayFunc = func(time.Duration) {}
	}

	h, err := New(fake, &fakePin{onSet: fake.chipSelect}, &fakePin{}, &fakePin{}, config)
	require.NoError(t, err)

	return h, fake
}

func pattern(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	return buf
}
