package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// PipelineDescriptor is the immutable fixed-function configuration for the
// bootstrap pipeline. Viewport and scissor are declared dynamic with a count
// of one each; the concrete rectangles are set at draw time. Everything else
// is fixed: triangle list without primitive restart, filled polygons,
// back-face culling with a clockwise front face, no depth bias, one sample,
// blending disabled with the full color write mask.
type PipelineDescriptor struct {
	VertexInput   *core1_0.PipelineVertexInputStateCreateInfo
	InputAssembly *core1_0.PipelineInputAssemblyStateCreateInfo
	Viewport      *core1_0.PipelineViewportStateCreateInfo
	Rasterization *core1_0.PipelineRasterizationStateCreateInfo
	Multisample   *core1_0.PipelineMultisampleStateCreateInfo
	ColorBlend    *core1_0.PipelineColorBlendStateCreateInfo
	DynamicState  *core1_0.PipelineDynamicStateCreateInfo
}

// NewPipelineDescriptor assembles the fixed-function state. No vertex input
// is declared: the bootstrap shaders generate their geometry.
func NewPipelineDescriptor() *PipelineDescriptor {
	return &PipelineDescriptor{
		VertexInput: &core1_0.PipelineVertexInputStateCreateInfo{},

		InputAssembly: &core1_0.PipelineInputAssemblyStateCreateInfo{
			Topology:               core1_0.PrimitiveTopologyTriangleList,
			PrimitiveRestartEnable: false,
		},

		// Counts are fixed at one; the entries are placeholders for the
		// dynamic rectangles.
		Viewport: &core1_0.PipelineViewportStateCreateInfo{
			Viewports: make([]core1_0.Viewport, 1),
			Scissors:  make([]core1_0.Rect2D, 1),
		},

		Rasterization: &core1_0.PipelineRasterizationStateCreateInfo{
			DepthClampEnable:        false,
			RasterizerDiscardEnable: false,

			PolygonMode: core1_0.PolygonModeFill,
			CullMode:    core1_0.CullModeBack,
			FrontFace:   core1_0.FrontFaceClockwise,

			DepthBiasEnable: false,

			LineWidth: 1.0,
		},

		Multisample: &core1_0.PipelineMultisampleStateCreateInfo{
			SampleShadingEnable:  false,
			RasterizationSamples: core1_0.Samples1,
			MinSampleShading:     1.0,
		},

		ColorBlend: &core1_0.PipelineColorBlendStateCreateInfo{
			LogicOpEnabled: false,
			LogicOp:        core1_0.LogicOpCopy,

			BlendConstants: [4]float32{0, 0, 0, 0},
			Attachments: []core1_0.PipelineColorBlendAttachmentState{
				{
					BlendEnabled:   false,
					ColorWriteMask: core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
				},
			},
		},

		DynamicState: &core1_0.PipelineDynamicStateCreateInfo{
			DynamicStates: []core1_0.DynamicState{
				core1_0.DynamicStateViewport,
				core1_0.DynamicStateScissor,
			},
		},
	}
}

// createPipelineLayout builds the empty layout: no descriptor sets, no push
// constants.
func createPipelineLayout(deviceDriver core1_0.CoreDeviceDriver) (core1_0.PipelineLayout, error) {
	layout, _, err := deviceDriver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{})
	if err != nil {
		return core1_0.PipelineLayout{}, errors.Wrap(ErrPipelineLayoutCreation, err.Error())
	}
	return layout, nil
}

// createRenderPass builds the single-subpass pass the pipeline renders
// into: one color attachment in the chain's format, cleared on load and
// presented at the end.
func createRenderPass(deviceDriver core1_0.CoreDeviceDriver, format core1_0.Format) (core1_0.RenderPass, error) {
	renderPass, _, err := deviceDriver.CreateRenderPass(nil, core1_0.RenderPassCreateInfo{
		Attachments: []core1_0.AttachmentDescription{
			{
				Format:         format,
				Samples:        core1_0.Samples1,
				LoadOp:         core1_0.AttachmentLoadOpClear,
				StoreOp:        core1_0.AttachmentStoreOpStore,
				StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
				StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
				InitialLayout:  core1_0.ImageLayoutUndefined,
				FinalLayout:    khr_swapchain.ImageLayoutPresentSrc,
			},
		},
		Subpasses: []core1_0.SubpassDescription{
			{
				PipelineBindPoint: core1_0.PipelineBindPointGraphics,
				ColorAttachments: []core1_0.AttachmentReference{
					{
						Attachment: 0,
						Layout:     core1_0.ImageLayoutColorAttachmentOptimal,
					},
				},
			},
		},
		SubpassDependencies: []core1_0.SubpassDependency{
			{
				SrcSubpass: core1_0.SubpassExternal,
				DstSubpass: 0,

				SrcStageMask:  core1_0.PipelineStageColorAttachmentOutput,
				SrcAccessMask: 0,

				DstStageMask:  core1_0.PipelineStageColorAttachmentOutput,
				DstAccessMask: core1_0.AccessColorAttachmentWrite,
			},
		},
	})
	if err != nil {
		return core1_0.RenderPass{}, errors.Wrap(ErrPipelineCreation, err.Error())
	}
	return renderPass, nil
}

// createGraphicsPipeline compiles the two shader stages against the
// descriptor, layout and render pass. The shader modules only exist for the
// duration of the call.
func createGraphicsPipeline(deviceDriver core1_0.CoreDeviceDriver, descriptor *PipelineDescriptor, layout core1_0.PipelineLayout, renderPass core1_0.RenderPass, vertCode, fragCode []uint32) (core1_0.Pipeline, error) {
	vertShader, _, err := deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: vertCode,
	})
	if err != nil {
		return core1_0.Pipeline{}, errors.Wrap(ErrPipelineCreation, err.Error())
	}
	defer deviceDriver.DestroyShaderModule(vertShader, nil)

	fragShader, _, err := deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: fragCode,
	})
	if err != nil {
		return core1_0.Pipeline{}, errors.Wrap(ErrPipelineCreation, err.Error())
	}
	defer deviceDriver.DestroyShaderModule(fragShader, nil)

	pipelines, _, err := deviceDriver.CreateGraphicsPipelines(nil, nil,
		core1_0.GraphicsPipelineCreateInfo{
			Stages: []core1_0.PipelineShaderStageCreateInfo{
				{
					Stage:  core1_0.StageVertex,
					Module: vertShader,
					Name:   "main",
				},
				{
					Stage:  core1_0.StageFragment,
					Module: fragShader,
					Name:   "main",
				},
			},
			VertexInputState:   descriptor.VertexInput,
			InputAssemblyState: descriptor.InputAssembly,
			ViewportState:      descriptor.Viewport,
			RasterizationState: descriptor.Rasterization,
			MultisampleState:   descriptor.Multisample,
			ColorBlendState:    descriptor.ColorBlend,
			DynamicState:       descriptor.DynamicState,
			Layout:             layout,
			RenderPass:         renderPass,
			Subpass:            0,
			BasePipelineIndex:  -1,
		},
	)
	if err != nil {
		return core1_0.Pipeline{}, errors.Wrap(ErrPipelineCreation, err.Error())
	}

	return pipelines[0], nil
}
