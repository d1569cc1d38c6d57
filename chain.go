package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// PresentationChain owns the swapchain plus its backing images and the one
// image view derived from each image. The driver may hand back more images
// than the plan asked for; Images and Views always reflect the real count.
type PresentationChain struct {
	extension khr_swapchain.ExtensionDriver
	Swapchain khr_swapchain.Swapchain
	Images    []core1_0.Image
	Views     []core1_0.ImageView
}

// buildChain creates the swapchain from the negotiated plan and builds the
// per-image views: 2D, color aspect, identity swizzle, one mip, one layer.
func buildChain(deviceDriver core1_0.CoreDeviceDriver, surface khr_surface.Surface, capabilities *khr_surface.SurfaceCapabilities, plan PresentationPlan, queues QueuePlan) (*PresentationChain, error) {
	extension := khr_swapchain.CreateExtensionDriverFromCoreDriver(deviceDriver)

	sharingMode, queueFamilyIndices := queues.SharingMode()

	swapchain, _, err := extension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    plan.ImageCount,
		ImageFormat:      plan.SurfaceFormat.Format,
		ImageColorSpace:  plan.SurfaceFormat.ColorSpace,
		ImageExtent:      plan.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    plan.PresentMode,
		Clipped:        true,
	})
	if err != nil {
		return nil, errors.Wrap(ErrChainCreation, err.Error())
	}

	chain := &PresentationChain{
		extension: extension,
		Swapchain: swapchain,
	}

	chain.Images, _, err = extension.GetSwapchainImages(swapchain)
	if err != nil {
		chain.Destroy(deviceDriver)
		return nil, errors.Wrap(ErrChainCreation, err.Error())
	}

	for _, image := range chain.Images {
		view, _, err := deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   plan.SurfaceFormat.Format,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			chain.Destroy(deviceDriver)
			return nil, errors.Wrap(ErrImageViewCreation, err.Error())
		}

		chain.Views = append(chain.Views, view)
	}

	return chain, nil
}

// Destroy releases the views before the swapchain. The images belong to the
// swapchain and go with it.
func (c *PresentationChain) Destroy(deviceDriver core1_0.CoreDeviceDriver) {
	for _, view := range c.Views {
		deviceDriver.DestroyImageView(view, nil)
	}
	c.Views = nil

	if c.Swapchain.Initialized() {
		c.extension.DestroySwapchain(c.Swapchain, nil)
		c.Swapchain = khr_swapchain.Swapchain{}
	}
}
