package modelcore

import "github.com/gogpu/gputypes"

// Resource IDs
//
// These opaque IDs identify GPU resources owned by a device. The device
// layer maintains the mapping between IDs and actual backend resources.
// IDs are uint64 to accommodate various backend handle sizes.

// BufferID is an opaque handle to a GPU buffer.
type BufferID uint64

// TextureID is an opaque handle to a GPU texture.
type TextureID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// PrimitiveTopology specifies how a primitive's vertices are assembled
// into points, lines, or triangles.
type PrimitiveTopology uint8

// Primitive topologies.
const (
	// TopologyPointList draws one point per vertex.
	TopologyPointList PrimitiveTopology = iota

	// TopologyLineList draws one line per vertex pair.
	TopologyLineList

	// TopologyLineStrip draws a connected line through all vertices.
	TopologyLineStrip

	// TopologyTriangleList draws one triangle per vertex triple.
	TopologyTriangleList

	// TopologyTriangleStrip draws a triangle for each vertex after the
	// first two, sharing the previous edge.
	TopologyTriangleStrip

	// TopologyTriangleFan draws a triangle for each vertex after the
	// first two, sharing the first vertex.
	TopologyTriangleFan
)

// String returns a human-readable topology name.
func (t PrimitiveTopology) String() string {
	switch t {
	case TopologyPointList:
		return "point-list"
	case TopologyLineList:
		return "line-list"
	case TopologyLineStrip:
		return "line-strip"
	case TopologyTriangleList:
		return "triangle-list"
	case TopologyTriangleStrip:
		return "triangle-strip"
	case TopologyTriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// TriangleCount returns the number of triangles assembled from
// elementCount vertices or indices. Non-triangle topologies yield zero.
func (t PrimitiveTopology) TriangleCount(elementCount int) int {
	switch t {
	case TopologyTriangleList:
		return elementCount / 3
	case TopologyTriangleStrip, TopologyTriangleFan:
		if elementCount < 3 {
			return 0
		}
		return elementCount - 2
	default:
		return 0
	}
}

// PointCount returns the number of points assembled from elementCount
// vertices or indices. Non-point topologies yield zero.
func (t PrimitiveTopology) PointCount(elementCount int) int {
	if t == TopologyPointList {
		return elementCount
	}
	return 0
}

// BytesPerPixel returns the byte size of one pixel in the given texture
// format. Unknown formats default to 4 (RGBA8).
func BytesPerPixel(format gputypes.TextureFormat) int {
	switch format {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatR32Float:
		return 4
	case gputypes.TextureFormatRG32Float:
		return 8
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return 4
	case gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		return 4
	}
}
