// Package modelcore provides shared core types for the model rendering slice.
//
// It defines the opaque resource IDs ([BufferID], [TextureID]) used as
// identity keys throughout the module, the [PrimitiveTopology] enumeration
// with its element-counting helpers, and texture format size queries.
//
// # Resource Identity
//
// GPU resources are identified by opaque uint64 IDs assigned by the device
// layer at creation time. IDs are unique per device and never reused within
// a device's lifetime, which makes them safe as deduplication keys: two
// records referring to the same GPU resource carry the same ID.
//
// # Primitive Counting
//
// [PrimitiveTopology.TriangleCount] and [PrimitiveTopology.PointCount]
// translate raw element counts (index count for indexed draws, vertex count
// otherwise) into the primitive counts reported by model statistics.
package modelcore
