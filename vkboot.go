// Package vkboot bootstraps a presentable Vulkan rendering context for a
// single window: it selects a capable physical device, negotiates a
// swapchain configuration against the surface, and builds the fixed-function
// pipeline description. Drawing, frame pacing and swapchain recreation are
// out of scope and left to the caller.
package vkboot

import (
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// Context is the bootstrapped rendering context. It owns every native
// resource it references; Teardown releases them in reverse acquisition
// order. A Context is built and used on a single thread.
type Context struct {
	GlobalDriver   core1_0.GlobalDriver
	InstanceDriver core1_0.CoreInstanceDriver
	DeviceDriver   core1_0.CoreDeviceDriver

	Surface khr_surface.Surface

	// Report is the winning device's capability report; it seeds every
	// stage after selection and is kept for the caller's inspection.
	Report *DeviceCapabilityReport
	Queues QueuePlan
	Plan   PresentationPlan

	GraphicsQueue core1_0.Queue
	PresentQueue  core1_0.Queue

	Chain      *PresentationChain
	Descriptor *PipelineDescriptor

	PipelineLayout core1_0.PipelineLayout
	RenderPass     core1_0.RenderPass
	Pipeline       core1_0.Pipeline

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	releases releaseStack
}

// Bootstrap negotiates and builds a rendering context for window. On any
// failure it unwinds whatever was already created and returns the error;
// nothing native is left behind.
func Bootstrap(window Window, config Config) (*Context, error) {
	ctx := &Context{}

	err := ctx.bootstrap(window, config)
	if err != nil {
		ctx.releases.run()
		return nil, err
	}

	return ctx, nil
}

func (ctx *Context) bootstrap(window Window, config Config) error {
	var err error
	ctx.GlobalDriver, err = core.CreateDriverFromProcAddr(window.InstanceProcAddr())
	if err != nil {
		return err
	}

	ctx.InstanceDriver, err = createInstance(ctx.GlobalDriver, window, config)
	if err != nil {
		return err
	}
	ctx.releases.push(func() { ctx.InstanceDriver.DestroyInstance(nil) })

	if config.Validation {
		ctx.debugDriver, ctx.debugMessenger, err = setupDebugMessenger(ctx.InstanceDriver)
		if err != nil {
			return err
		}
		ctx.releases.push(func() { ctx.debugDriver.DestroyDebugUtilsMessenger(ctx.debugMessenger, nil) })
	}

	surfaceExtension := khr_surface.CreateExtensionDriverFromCoreDriver(ctx.InstanceDriver)
	ctx.Surface, err = window.CreateSurface(ctx.InstanceDriver.Instance(), surfaceExtension)
	if err != nil {
		return err
	}
	ctx.releases.push(func() { surfaceExtension.DestroySurface(ctx.Surface, nil) })

	candidates, _, err := ctx.InstanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return err
	}

	prober := NewProber(ctx.InstanceDriver, surfaceExtension, ctx.Surface, config.DeviceExtensions)
	ctx.Report, err = selectDevice(candidates, prober.Probe)
	if err != nil {
		return err
	}

	ctx.Queues, err = PlanQueues(ctx.Report)
	if err != nil {
		return err
	}

	var deviceDriver core1_0.CoreDeviceDriver
	deviceDriver, ctx.GraphicsQueue, ctx.PresentQueue, err = createLogicalDevice(ctx.InstanceDriver, ctx.Report, ctx.Queues, config)
	if err != nil {
		return err
	}
	ctx.DeviceDriver = deviceDriver
	ctx.releases.push(func() { deviceDriver.DestroyDevice(nil) })

	framebufferWidth, framebufferHeight := window.DrawableSize()
	ctx.Plan, err = NegotiatePresentation(ctx.Report.Surface, config.PreferredFormat, framebufferWidth, framebufferHeight)
	if err != nil {
		return err
	}

	ctx.Chain, err = buildChain(deviceDriver, ctx.Surface, ctx.Report.Surface.Capabilities, ctx.Plan, ctx.Queues)
	if err != nil {
		return err
	}
	ctx.releases.push(func() { ctx.Chain.Destroy(deviceDriver) })

	ctx.Descriptor = NewPipelineDescriptor()

	ctx.PipelineLayout, err = createPipelineLayout(deviceDriver)
	if err != nil {
		return err
	}
	ctx.releases.push(func() { deviceDriver.DestroyPipelineLayout(ctx.PipelineLayout, nil) })

	// Shader binaries are optional: without them the context stops at the
	// descriptor and layout, which is all a caller doing its own pipeline
	// management needs.
	if config.VertexShaderPath == "" && config.FragmentShaderPath == "" {
		return nil
	}

	vertCode, err := loadShaderCode(config.ShaderSource, config.VertexShaderPath)
	if err != nil {
		return err
	}
	fragCode, err := loadShaderCode(config.ShaderSource, config.FragmentShaderPath)
	if err != nil {
		return err
	}

	ctx.RenderPass, err = createRenderPass(deviceDriver, ctx.Plan.SurfaceFormat.Format)
	if err != nil {
		return err
	}
	ctx.releases.push(func() { deviceDriver.DestroyRenderPass(ctx.RenderPass, nil) })

	ctx.Pipeline, err = createGraphicsPipeline(deviceDriver, ctx.Descriptor, ctx.PipelineLayout, ctx.RenderPass, vertCode, fragCode)
	if err != nil {
		return err
	}
	ctx.releases.push(func() { deviceDriver.DestroyPipeline(ctx.Pipeline, nil) })

	return nil
}

// Teardown releases everything the context owns, children before owners.
// Safe to call once whether or not the caller's run loop exited cleanly.
func (ctx *Context) Teardown() {
	ctx.releases.run()
}
