package model

import "github.com/gogpu/model/modelcore"

// Material groups the fixed-size textures bound by a primitive's shader.
// Any field may be nil. Textures are commonly shared between materials of
// the same model; statistics deduplicate them by identity.
type Material struct {
	// BaseColorTexture is the albedo texture.
	BaseColorTexture *Texture

	// MetallicRoughnessTexture packs metalness and roughness channels.
	MetallicRoughnessTexture *Texture

	// NormalTexture is the tangent-space normal map.
	NormalTexture *Texture

	// EmissiveTexture is the emissive color texture.
	EmissiveTexture *Texture
}

// Textures returns the material's non-nil textures.
func (m *Material) Textures() []*Texture {
	var out []*Texture
	for _, t := range []*Texture{
		m.BaseColorTexture,
		m.MetallicRoughnessTexture,
		m.NormalTexture,
		m.EmissiveTexture,
	} {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Primitive is one draw call of a model: a topology, the vertex buffers
// feeding it, an optional index buffer, and the textures its material
// samples. Primitives reference resources they do not own; several
// primitives of one model routinely share buffers and textures.
type Primitive struct {
	// Topology specifies vertex assembly for this draw.
	Topology modelcore.PrimitiveTopology

	// Attributes are the vertex buffers (position, normal, texcoord, ...).
	Attributes []*Buffer

	// VertexCount is the number of vertices in the attribute buffers.
	VertexCount int

	// Indices is the index buffer, or nil for non-indexed draws.
	Indices *Buffer

	// IndexCount is the number of indices when Indices is set.
	IndexCount int

	// Material holds the fixed-size textures sampled by this draw.
	Material *Material

	// FeatureIDTexture maps texels to feature IDs for per-texel styling,
	// or nil. Sized at creation like any material texture.
	FeatureIDTexture *Texture
}

// elementCount returns the number of elements assembled by the draw:
// the index count for indexed primitives, the vertex count otherwise.
func (p *Primitive) elementCount() int {
	if p.Indices != nil {
		return p.IndexCount
	}
	return p.VertexCount
}
