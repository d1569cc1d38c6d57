package vkboot

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChoosePresentModePrefersMailbox(t *testing.T) {
	modes := []khr_surface.PresentMode{
		khr_surface.PresentModeImmediate,
		khr_surface.PresentModeFIFO,
		khr_surface.PresentModeMailbox,
	}

	if got := choosePresentMode(modes); got != khr_surface.PresentModeMailbox {
		t.Errorf("expected mailbox, got %v", got)
	}
}

func TestChoosePresentModeNeverNeither(t *testing.T) {
	// Whatever the surface offers, the result is mailbox or FIFO.
	lists := [][]khr_surface.PresentMode{
		{khr_surface.PresentModeFIFO},
		{khr_surface.PresentModeImmediate, khr_surface.PresentModeFIFO},
		{khr_surface.PresentModeFIFORelaxed, khr_surface.PresentModeFIFO},
		{khr_surface.PresentModeMailbox},
		{khr_surface.PresentModeImmediate, khr_surface.PresentModeMailbox, khr_surface.PresentModeFIFO},
	}

	for _, modes := range lists {
		got := choosePresentMode(modes)
		if got != khr_surface.PresentModeMailbox && got != khr_surface.PresentModeFIFO {
			t.Errorf("modes %v: got %v, want mailbox or FIFO", modes, got)
		}
	}
}

func TestChooseImageCountUnbounded(t *testing.T) {
	// MaxImageCount of zero means no ceiling, so the answer is always
	// min+1 no matter the magnitude.
	for _, min := range []int{1, 2, 3, 16, 100} {
		caps := &khr_surface.SurfaceCapabilities{
			MinImageCount: min,
			MaxImageCount: 0,
		}
		if got := chooseImageCount(caps); got != min+1 {
			t.Errorf("min %d unbounded: got %d, want %d", min, got, min+1)
		}
	}
}

func TestChooseImageCountClamped(t *testing.T) {
	tests := []struct {
		min, max, want int
	}{
		{2, 2, 2},
		{2, 3, 3},
		{3, 8, 4},
	}

	for _, tt := range tests {
		caps := &khr_surface.SurfaceCapabilities{
			MinImageCount: tt.min,
			MaxImageCount: tt.max,
		}
		if got := chooseImageCount(caps); got != tt.want {
			t.Errorf("min %d max %d: got %d, want %d", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestChooseSurfaceFormatPreferred(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	available := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		preferred,
	}

	if got := chooseSurfaceFormat(available, preferred); got != preferred {
		t.Errorf("got %v, want preferred format", got)
	}
}

func TestChooseSurfaceFormatFallback(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	available := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	if got := chooseSurfaceFormat(available, preferred); got != available[0] {
		t.Errorf("got %v, want first available format", got)
	}
}

func TestChooseSurfaceFormatIdempotent(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	available := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	first := chooseSurfaceFormat(available, preferred)
	second := chooseSurfaceFormat([]khr_surface.SurfaceFormat{first}, preferred)
	if first != second {
		t.Errorf("selection not idempotent: %v then %v", first, second)
	}
}

func TestChooseExtentSentinel(t *testing.T) {
	caps := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
	}

	got := chooseExtent(caps, 1024, 768)
	want := core1_0.Extent2D{Width: 1024, Height: 768}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChooseExtentSentinelClamps(t *testing.T) {
	caps := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 640, Height: 480},
		MaxImageExtent: core1_0.Extent2D{Width: 1920, Height: 1080},
	}

	// Each axis clamps independently.
	got := chooseExtent(caps, 320, 4000)
	want := core1_0.Extent2D{Width: 640, Height: 1080}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChooseExtentNonSentinel(t *testing.T) {
	caps := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: 1280, Height: 720},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
	}

	// The surface already decided; the framebuffer size is irrelevant.
	got := chooseExtent(caps, 99, 99)
	want := core1_0.Extent2D{Width: 1280, Height: 720}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNegotiatePresentation(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	surface := &SurfaceCapabilitySet{
		Capabilities: &khr_surface.SurfaceCapabilities{
			MinImageCount:  2,
			MaxImageCount:  0,
			CurrentExtent:  core1_0.Extent2D{Width: 800, Height: 600},
			MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
		},
		Formats:      []khr_surface.SurfaceFormat{preferred},
		PresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFO},
	}

	plan, err := NegotiatePresentation(surface, preferred, 800, 600)
	if err != nil {
		t.Fatal(err)
	}

	if plan.SurfaceFormat != preferred {
		t.Errorf("format: got %v", plan.SurfaceFormat)
	}
	if plan.PresentMode != khr_surface.PresentModeFIFO {
		t.Errorf("present mode: got %v", plan.PresentMode)
	}
	if want := (core1_0.Extent2D{Width: 800, Height: 600}); plan.Extent != want {
		t.Errorf("extent: got %v, want %v", plan.Extent, want)
	}
	if plan.ImageCount != 3 {
		t.Errorf("image count: got %d, want 3", plan.ImageCount)
	}
}

func TestNegotiatePresentationEmptySupport(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	surface := &SurfaceCapabilitySet{
		Capabilities: &khr_surface.SurfaceCapabilities{MinImageCount: 2},
		Formats:      []khr_surface.SurfaceFormat{preferred},
	}

	_, err := NegotiatePresentation(surface, preferred, 800, 600)
	if !errors.Is(err, ErrEmptySurfaceSupport) {
		t.Errorf("got %v, want ErrEmptySurfaceSupport", err)
	}
	if !IsConfigurationUnavailable(err) {
		t.Error("empty surface support must classify as configuration-unavailable")
	}
}
