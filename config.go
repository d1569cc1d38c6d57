package vkboot

import (
	"io/fs"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Config carries everything Bootstrap needs beyond the window itself.
// Validation is an explicit field rather than a build-time constant so both
// branches can be exercised deterministically.
type Config struct {
	// ApplicationName is reported to the driver in the instance info.
	ApplicationName string

	// Validation enables the Khronos validation layer and the debug
	// messenger. Bootstrap fails if the layer is requested but not
	// installed.
	Validation bool

	// DeviceExtensions lists the device extensions a candidate must
	// support to be selected. It must include the swapchain extension for
	// a presentable context.
	DeviceExtensions []string

	// PreferredFormat is requested first during format negotiation. When
	// the surface does not offer it, the first supported format is used
	// instead.
	PreferredFormat khr_surface.SurfaceFormat

	// VertexShaderPath and FragmentShaderPath locate pre-compiled SPIR-V
	// binaries inside ShaderSource.
	VertexShaderPath   string
	FragmentShaderPath string

	// ShaderSource is the filesystem shader paths resolve against.
	ShaderSource fs.FS
}

// DefaultConfig returns the configuration used by the demo: BGRA sRGB,
// swapchain extension only, validation off.
func DefaultConfig() Config {
	return Config{
		ApplicationName:  "vkboot",
		DeviceExtensions: []string{khr_swapchain.ExtensionName},
		PreferredFormat: khr_surface.SurfaceFormat{
			Format:     core1_0.FormatB8G8R8A8SRGB,
			ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
		},
	}
}
