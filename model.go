package model

import (
	"fmt"

	"github.com/gogpu/model/internal/gpu"
	"github.com/gogpu/model/modelcore"
)

// Model is a retained set of draw primitives with the shader state and
// resource accounting that belong to them. It owns its [Statistics] and
// rebuilds them from scratch on every pipeline rebuild, so shared buffers
// and textures are never double-counted and nothing stale survives a
// rebuild.
type Model struct {
	label string

	primitives     []*Primitive
	propertyTables []*PropertyTable

	// batchTexture is the model's picking/styling overlay, or nil.
	batchTexture *BatchTexture

	stats *Statistics

	// pipeline is the compiled shader state, nil until the first rebuild.
	pipeline *gpu.Pipeline

	// device is the device the current pipeline was built on.
	device *Device
}

// NewModel creates an empty model.
func NewModel(label string) *Model {
	return &Model{
		label: label,
		stats: NewStatistics(),
	}
}

// Label returns the model's debug label.
func (m *Model) Label() string { return m.label }

// AddPrimitive appends a draw primitive to the model. Takes effect on the
// next pipeline rebuild.
func (m *Model) AddPrimitive(p *Primitive) {
	if p == nil {
		return
	}
	m.primitives = append(m.primitives, p)
}

// AddPropertyTable attaches a per-feature metadata table to the model.
func (m *Model) AddPropertyTable(t *PropertyTable) {
	if t == nil {
		return
	}
	m.propertyTables = append(m.propertyTables, t)
}

// SetBatchTexture attaches the model's picking/styling overlay texture.
func (m *Model) SetBatchTexture(bt *BatchTexture) {
	m.batchTexture = bt
}

// BatchTexture returns the model's overlay texture, or nil.
func (m *Model) BatchTexture() *BatchTexture { return m.batchTexture }

// Statistics returns the model's resource statistics. The returned value
// is live: it reflects the most recent pipeline rebuild, and its batch
// texture aggregate tracks asynchronous loads as they complete. Valid to
// read at any time, including mid-build.
func (m *Model) Statistics() *Statistics { return m.stats }

// RebuildPipeline recompiles the model's shader state on the given device
// and re-derives the resource statistics by traversing every primitive.
// It must be called after the model's primitives, tables, or batch
// texture change; statistics from the previous generation are discarded
// before re-registration, never accumulated onto.
func (m *Model) RebuildPipeline(device *Device) error {
	if device == nil {
		return ErrNilDevice
	}

	pipeline, err := gpu.BuildPipeline(device.adapter)
	if err != nil {
		return fmt.Errorf("model: pipeline rebuild failed: %w", err)
	}

	if m.pipeline != nil && m.device != nil {
		m.pipeline.Destroy(m.device.adapter)
	}
	m.pipeline = pipeline
	m.device = device

	m.updateStatistics()

	Logger().Info("model: pipeline rebuilt",
		"label", m.label,
		"primitives", len(m.primitives),
		"spirvWords", pipeline.SPIRVWords())

	return nil
}

// updateStatistics clears the statistics and re-registers every resource
// reachable from the model's primitives. Buffers and textures shared
// across primitives are registered repeatedly and counted once; point,
// triangle, and property table totals are accumulated directly, with no
// identity tracking.
func (m *Model) updateStatistics() {
	s := m.stats
	s.Clear()

	for _, p := range m.primitives {
		for _, buf := range p.Attributes {
			if buf != nil {
				s.AddBuffer(buf, buf.HasCPUCopy())
			}
		}
		if p.Indices != nil {
			s.AddBuffer(p.Indices, p.Indices.HasCPUCopy())
		}
		if p.Material != nil {
			for _, tex := range p.Material.Textures() {
				s.AddTexture(tex)
			}
		}
		if p.FeatureIDTexture != nil {
			s.AddTexture(p.FeatureIDTexture)
		}

		n := p.elementCount()
		if p.Topology == modelcore.TopologyPointList {
			s.PointsLength += p.Topology.PointCount(n)
		} else {
			s.TrianglesLength += p.Topology.TriangleCount(n)
		}
	}

	for _, t := range m.propertyTables {
		s.PropertyTablesByteLength += t.ByteLength()
	}

	if m.batchTexture != nil {
		s.AddBatchTexture(m.batchTexture)
	}
}

// Destroy releases the model's shader state. Resources referenced by
// primitives are owned by their device and are not destroyed here.
func (m *Model) Destroy() {
	if m.pipeline != nil && m.device != nil {
		m.pipeline.Destroy(m.device.adapter)
	}
	m.pipeline = nil
	m.device = nil
}
