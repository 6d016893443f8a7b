// Package gpu bridges the model resource layer to gogpu/wgpu's HAL.
//
// This is an internal package used by the model library. It owns the
// mapping from opaque resource IDs to live hal.Buffer and hal.Texture
// handles, performs queue uploads, and compiles the model shader via
// gogpu/naga.
//
// Key components:
//
//   - Adapter: ID allocation, resource tracking, and uploads for one device
//   - Pipeline: compiled model shader module and bind group layouts
//
// The package never touches counters or statistics; callers account for
// resource sizes themselves.
package gpu
