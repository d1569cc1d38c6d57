package vkboot

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// Window is the slice of the windowing layer the bootstrap consumes: the
// loader entry point, the instance extensions the window system needs, the
// current framebuffer size in pixels, and surface creation.
type Window interface {
	InstanceProcAddr() unsafe.Pointer
	InstanceExtensions() []string
	DrawableSize() (width, height int)
	CreateSurface(instance core1_0.Instance, surfaceExtension khr_surface.ExtensionDriver) (khr_surface.Surface, error)
}

// SDLWindow adapts an *sdl.Window created with sdl.WINDOW_VULKAN.
type SDLWindow struct {
	window *sdl.Window
}

func WrapSDLWindow(window *sdl.Window) *SDLWindow {
	return &SDLWindow{window: window}
}

func (w *SDLWindow) InstanceProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *SDLWindow) InstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *SDLWindow) DrawableSize() (int, int) {
	width, height := w.window.VulkanGetDrawableSize()
	return int(width), int(height)
}

func (w *SDLWindow) CreateSurface(instance core1_0.Instance, surfaceExtension khr_surface.ExtensionDriver) (khr_surface.Surface, error) {
	return vkng_sdl2.CreateSurface(instance, surfaceExtension, w.window)
}
