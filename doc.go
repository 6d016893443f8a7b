// Package model provides retained-mode 3D model resource management for
// the GoGPU ecosystem: geometry buffers, material textures, per-feature
// metadata, and the per-model accounting of what all of it costs in GPU
// and CPU memory.
//
// # Overview
//
// A [Model] holds draw primitives that reference GPU resources created
// through a [Device]. Resources are routinely shared between primitives;
// the model's [Statistics] deduplicate by resource identity so memory
// reporting counts each buffer and texture once, and they track batch
// (picking/styling) textures lazily because those load asynchronously and
// change size after registration.
//
// # Quick Start
//
//	dev, err := model.NewDevice(provider) // provider from the host app
//	if err != nil {
//	    return err
//	}
//
//	positions, _ := dev.CreateBuffer(&model.BufferDescriptor{
//	    Label: "positions",
//	    Data:  posBytes,
//	    Usage: gputypes.BufferUsageVertex,
//	})
//
//	m := model.NewModel("building")
//	m.AddPrimitive(&model.Primitive{
//	    Topology:    modelcore.TopologyTriangleList,
//	    Attributes:  []*model.Buffer{positions},
//	    VertexCount: 36,
//	})
//	if err := m.RebuildPipeline(dev); err != nil {
//	    return err
//	}
//
//	fmt.Println(m.Statistics().GeometryByteLength())
//
// # Architecture
//
// The library is organized into:
//   - Public API: Model, Primitive, Device, Statistics, resource records
//   - modelcore: opaque resource IDs, topologies, format sizes
//   - internal/gpu: HAL resource bookkeeping and shader compilation
//
// The device is always received from the host application via a
// gpucontext provider; model never creates its own GPU instance.
//
// # Logging
//
// By default the package is silent. Call [SetLogger] to receive
// structured logs for resource creation and pipeline rebuilds.
package model
