package dxf

import (
	"sort"

	"github.com/jinzhu/copier"
	"github.com/ungerik/go3d/float64/vec3"
)

// XDataCode is the group code of an extended data record.
type XDataCode int16

const (
	XDataString         XDataCode = 1000
	XDataControlString  XDataCode = 1002
	XDataLayerName      XDataCode = 1003
	XDataBinaryData     XDataCode = 1004
	XDataDatabaseHandle XDataCode = 1005
	XDataRealX          XDataCode = 1010
	XDataReal           XDataCode = 1040
	XDataDistance       XDataCode = 1041
	XDataScaleFactor    XDataCode = 1042
	XDataInt16          XDataCode = 1070
	XDataInt32          XDataCode = 1071
)

// XDataRecord is one extended data value. Only the field matching Code is
// meaningful.
type XDataRecord struct {
	Code   XDataCode
	String string
	Int    int32
	Real   float64
	Point  vec3.T
	Binary []byte
}

func StringRecord(s string) XDataRecord { return XDataRecord{Code: XDataString, String: s} }
func Int16Record(v int16) XDataRecord   { return XDataRecord{Code: XDataInt16, Int: int32(v)} }
func Int32Record(v int32) XDataRecord   { return XDataRecord{Code: XDataInt32, Int: v} }
func RealRecord(v float64) XDataRecord  { return XDataRecord{Code: XDataReal, Real: v} }
func PointRecord(p vec3.T) XDataRecord  { return XDataRecord{Code: XDataRealX, Point: p} }
func BinaryRecord(b []byte) XDataRecord { return XDataRecord{Code: XDataBinaryData, Binary: b} }

// XData is the extended data attached to an entity by one registered
// application.
type XData struct {
	ApplicationName string
	Records         []XDataRecord
}

func NewXData(appName string, records ...XDataRecord) *XData {
	return &XData{ApplicationName: appName, Records: records}
}

// Clone duplicates the records deeply, including binary chunks, so the
// copy can be edited independently.
func (this *XData) Clone() *XData {
	c := &XData{ApplicationName: this.ApplicationName}
	if this.Records == nil {
		return c
	}
	if err := copier.CopyWithOption(&c.Records, this.Records, copier.Option{DeepCopy: true}); err != nil {
		// unreachable for identical slice types
		panic(err)
	}
	return c
}

// XDataDictionary maps application names to their extended data.
type XDataDictionary map[string]*XData

func (this XDataDictionary) Add(x *XData) {
	this[x.ApplicationName] = x
}

// ApplicationNames returns the registered application names in sorted order.
func (this XDataDictionary) ApplicationNames() []string {
	names := make([]string, 0, len(this))
	for name := range this {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone invokes Clone on every entry. A nil dictionary clones to nil.
func (this XDataDictionary) Clone() XDataDictionary {
	if this == nil {
		return nil
	}
	c := make(XDataDictionary, len(this))
	for name, x := range this {
		c[name] = x.Clone()
	}
	return c
}
