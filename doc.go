// Package dxf models the drawing entities of an in-memory DXF document.
//
// Every entity carries a shared set of presentation attributes (layer, line
// type, color, line weight, transparency, line type scale, normal, visibility
// and extended data) and an identity slot that receives a handle when the
// owning document prepares itself for serialization.
//
// The central type is PolyfaceMesh, a composite entity made of an ordered
// vertex list and an ordered face list referencing those vertexes by signed
// 1-based index. A mesh can be exploded into points, lines and 3D faces,
// transformed in place, deep cloned, and walked by the document handle pass.
//
// Nothing in this package performs I/O. Encoding to and decoding from DXF
// files is left to callers; the in-memory behavior here is what an encoder
// or decoder drives.
package dxf
