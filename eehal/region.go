package eehal

type MemoryRegionNameType string

const MemoryRegionEEPROM MemoryRegionNameType = "EEPROM"

/* MemoryRegion is a byte addressed view of (part of) the device. Access
   clamps at the end of the region and returns the number of bytes
   actually transferred. */
type MemoryRegion interface {
	GetLength() int
	Access(write bool, addr int, buf []byte) (int, error)
	GetParent() (MemoryRegion, int)
	GetName() MemoryRegionNameType
}

type halMemoryRegion struct {
	hal *HAL
}

/* MemoryRegion exposes the whole array. Writes are routed through the
   page bounded engine, reads through the sequential reader. */
func (h *HAL) MemoryRegion() MemoryRegion {
	return halMemoryRegion{hal: h}
}

func (r halMemoryRegion) GetName() MemoryRegionNameType {
	return MemoryRegionEEPROM
}

func (r halMemoryRegion) GetLength() int {
	return r.hal.capacity
}

func (r halMemoryRegion) GetParent() (MemoryRegion, int) {
	return nil, 0
}

func (r halMemoryRegion) Access(write bool, addr int, buf []byte) (int, error) {
	if addr < 0 || addr >= r.hal.capacity {
		return 0, nil
	}
	if addr+len(buf) > r.hal.capacity {
		buf = buf[:r.hal.capacity-addr]
	}

	var err error
	if write {
		err = r.hal.WriteBuffer(buf, addr)
	} else {
		err = r.hal.ReadBuffer(buf, addr)
	}
	if err != nil {
		return 0, err
	}

	return len(buf), nil
}

func WriteByte(m MemoryRegion, addr int, value byte) error {
	_, err := m.Access(true, addr, []byte{value})
	return err
}

func ReadByte(m MemoryRegion, addr int) (byte, error) {
	var buf [1]byte
	_, err := m.Access(false, addr, buf[:])
	return buf[0], err
}

type regionWindow struct {
	parent MemoryRegion
	offset int
	length int
	name   MemoryRegionNameType
}

/* RegionWindow maps a fixed span of parent as its own region, e.g. a
   configuration block at a known offset. */
func RegionWindow(name MemoryRegionNameType, parent MemoryRegion, offset int, length int) MemoryRegion {
	return regionWindow{
		parent: parent,
		offset: offset,
		length: length,
		name:   name,
	}
}

func (w regionWindow) GetName() MemoryRegionNameType {
	return w.name
}

func (w regionWindow) GetLength() int {
	return w.length
}

func (w regionWindow) GetParent() (MemoryRegion, int) {
	return w.parent, w.offset
}

func (w regionWindow) Access(write bool, addr int, buf []byte) (int, error) {
	if addr < 0 || addr >= w.length {
		return 0, nil
	}
	if addr+len(buf) > w.length {
		buf = buf[:w.length-addr]
	}

	return w.parent.Access(write, w.offset+addr, buf)
}
