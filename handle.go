package dxf

import (
	"errors"
	"strconv"
	"strings"
)

// Handle identifies an object inside a document. The zero value means the
// object has not been assigned a handle yet.
//
// Handles are 64 bits wide, which bounds a document to 2^64-1 objects.
type Handle uint64

// String returns the handle in the upper-case hexadecimal form used by DXF.
func (this Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(this), 16))
}

// ParseHandle parses a hexadecimal DXF handle.
func ParseHandle(s string) (Handle, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}
	return Handle(v), nil
}

// ErrHandleOverflow is reported when a handle pass runs past the largest
// representable handle.
var ErrHandleOverflow = errors.New("dxf: handle counter overflow")

// DxfObject is the identity slot embedded by every object that receives a
// handle.
type DxfObject struct {
	handle Handle
}

func (this *DxfObject) Handle() Handle {
	return this.handle
}

func (this *DxfObject) IsAssigned() bool {
	return this.handle != 0
}

// pending is the number of handles assign would consume: 1 or 0.
func (this *DxfObject) pending() uint64 {
	if this.handle != 0 {
		return 0
	}
	return 1
}

// assign stores next in the slot and returns the value for the following
// object. An already assigned slot keeps its handle and consumes nothing.
// Zero is reserved for unassigned slots and is never a valid counter.
func (this *DxfObject) assign(next Handle) Handle {
	if next == 0 {
		panic("dxf: handle counter must start at 1")
	}
	if this.handle != 0 {
		return next
	}
	this.handle = next
	return next + 1
}
