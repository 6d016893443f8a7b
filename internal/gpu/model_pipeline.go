package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded WGSL source for model draws.
//
//go:embed shaders/model.wgsl
var modelShaderWGSL string

// sceneUniformSize is the byte size of the scene uniform buffer.
// Layout: mvp (mat4x4<f32>) = 64 bytes.
const sceneUniformSize = 64

// Pipeline holds the compiled shader and layout objects for model draws.
// It is rebuilt whenever the model's draw configuration changes; the old
// pipeline must be destroyed by the caller after a successful rebuild.
type Pipeline struct {
	shaderModule hal.ShaderModule

	// sceneLayout binds the scene uniform buffer at group(0).
	sceneLayout hal.BindGroupLayout

	// materialLayout binds the base color texture and sampler at group(1).
	materialLayout hal.BindGroupLayout

	pipelineLayout hal.PipelineLayout

	// spirvWords is the compiled SPIR-V size in words, kept for diagnostics.
	spirvWords int
}

// BuildPipeline compiles the model shader to SPIR-V via naga and creates
// the shader module and layouts on the adapter's device.
func BuildPipeline(a *Adapter) (*Pipeline, error) {
	// Compile WGSL to SPIR-V
	spirvBytes, err := naga.Compile(modelShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile model shader: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p := &Pipeline{spirvWords: len(spirv)}

	device := a.Device()
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "model_shader",
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to create model shader module: %w", err)
	}
	p.shaderModule = module

	sceneLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "model_scene_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: sceneUniformSize,
				},
			},
		},
	})
	if err != nil {
		p.Destroy(a)
		return nil, fmt.Errorf("gpu: failed to create scene bind group layout: %w", err)
	}
	p.sceneLayout = sceneLayout

	materialLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "model_material_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		p.Destroy(a)
		return nil, fmt.Errorf("gpu: failed to create material bind group layout: %w", err)
	}
	p.materialLayout = materialLayout

	pipelineLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "model_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.sceneLayout, p.materialLayout},
	})
	if err != nil {
		p.Destroy(a)
		return nil, fmt.Errorf("gpu: failed to create model pipeline layout: %w", err)
	}
	p.pipelineLayout = pipelineLayout

	return p, nil
}

// SPIRVWords returns the compiled shader size in 32-bit words.
func (p *Pipeline) SPIRVWords() int { return p.spirvWords }

// Destroy releases the pipeline's shader module and layouts.
// Safe to call on a partially constructed pipeline.
func (p *Pipeline) Destroy(a *Adapter) {
	device := a.Device()
	if p.pipelineLayout != nil {
		device.DestroyPipelineLayout(p.pipelineLayout)
		p.pipelineLayout = nil
	}
	if p.materialLayout != nil {
		device.DestroyBindGroupLayout(p.materialLayout)
		p.materialLayout = nil
	}
	if p.sceneLayout != nil {
		device.DestroyBindGroupLayout(p.sceneLayout)
		p.sceneLayout = nil
	}
	if p.shaderModule != nil {
		device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}
}
