package vkboot

import (
	log "github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// PresentationPlan is the negotiated configuration for the presentation
// chain: one format, one present mode, one extent, one image count. All four
// are picked from the ranges the surface reported, so the plan is valid by
// construction.
type PresentationPlan struct {
	SurfaceFormat khr_surface.SurfaceFormat
	PresentMode   khr_surface.PresentMode
	Extent        core1_0.Extent2D
	ImageCount    int
}

// NegotiatePresentation reconciles the surface capability set with the
// preferred format and the window's current framebuffer size. The selector
// already guarantees a non-empty format and present-mode list; the guard is
// kept so a plan is never negotiated from an unchecked capability set.
func NegotiatePresentation(surface *SurfaceCapabilitySet, preferred khr_surface.SurfaceFormat, framebufferWidth, framebufferHeight int) (PresentationPlan, error) {
	if len(surface.Formats) == 0 || len(surface.PresentModes) == 0 {
		return PresentationPlan{}, ErrEmptySurfaceSupport
	}

	plan := PresentationPlan{
		SurfaceFormat: chooseSurfaceFormat(surface.Formats, preferred),
		PresentMode:   choosePresentMode(surface.PresentModes),
		Extent:        chooseExtent(surface.Capabilities, framebufferWidth, framebufferHeight),
		ImageCount:    chooseImageCount(surface.Capabilities),
	}

	log.WithFields(log.Fields{
		"format":      plan.SurfaceFormat.Format,
		"presentMode": plan.PresentMode,
		"extent":      plan.Extent,
		"imageCount":  plan.ImageCount,
	}).Info("negotiated presentation plan")

	return plan, nil
}

// chooseSurfaceFormat returns preferred when the surface offers it, and the
// first supported pair otherwise. The fallback is deterministic, not an
// error.
func chooseSurfaceFormat(availableFormats []khr_surface.SurfaceFormat, preferred khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range availableFormats {
		if format.Format == preferred.Format && format.ColorSpace == preferred.ColorSpace {
			return format
		}
	}

	log.WithField("format", availableFormats[0].Format).Info("preferred surface format unavailable, using first supported")
	return availableFormats[0]
}

// choosePresentMode prefers mailbox (low-latency triple buffering) and falls
// back to FIFO, the only mode the standard guarantees.
func choosePresentMode(availablePresentModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == khr_surface.PresentModeMailbox {
			return presentMode
		}
	}

	return khr_surface.PresentModeFIFO
}

// chooseExtent uses the surface's current extent verbatim unless it carries
// the "window system decides" sentinel, in which case the framebuffer size
// is clamped per axis into the reported range.
func chooseExtent(capabilities *khr_surface.SurfaceCapabilities, framebufferWidth, framebufferHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	width := framebufferWidth
	height := framebufferHeight

	if width < capabilities.MinImageExtent.Width {
		width = capabilities.MinImageExtent.Width
	}
	if width > capabilities.MaxImageExtent.Width {
		width = capabilities.MaxImageExtent.Width
	}
	if height < capabilities.MinImageExtent.Height {
		height = capabilities.MinImageExtent.Height
	}
	if height > capabilities.MaxImageExtent.Height {
		height = capabilities.MaxImageExtent.Height
	}

	return core1_0.Extent2D{Width: width, Height: height}
}

// chooseImageCount asks for one image beyond the minimum so a frame is never
// stalled waiting on the driver, then clamps to the maximum when the surface
// has one. A maximum of zero means unbounded.
func chooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && imageCount > capabilities.MaxImageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}
