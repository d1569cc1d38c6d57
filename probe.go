package vkboot

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// QueueFamilyCapability records what one queue family can do with respect to
// this bootstrap: submit graphics work, present to the target surface, or
// both.
type QueueFamilyCapability struct {
	Graphics bool
	Present  bool
}

// SurfaceCapabilitySet is the surface's answer for one device: image count
// and extent ranges plus the supported formats and present modes. It is
// queried once during probing and never refreshed.
type SurfaceCapabilitySet struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// DeviceCapabilityReport is everything the selector and the later stages
// need to know about one candidate device. Missing capability is recorded,
// not raised: probing only errors when a driver query itself fails.
type DeviceCapabilityReport struct {
	Device        core1_0.PhysicalDevice
	QueueFamilies []QueueFamilyCapability

	// MissingExtensions holds the required device extensions the device
	// does not expose. Surface is only populated when it is empty.
	MissingExtensions []string
	Surface           *SurfaceCapabilitySet
}

func (r *DeviceCapabilityReport) ExtensionsSupported() bool {
	return len(r.MissingExtensions) == 0
}

func (r *DeviceCapabilityReport) HasGraphicsFamily() bool {
	for _, family := range r.QueueFamilies {
		if family.Graphics {
			return true
		}
	}
	return false
}

func (r *DeviceCapabilityReport) HasPresentFamily() bool {
	for _, family := range r.QueueFamilies {
		if family.Present {
			return true
		}
	}
	return false
}

// Prober builds capability reports for candidate devices against one surface
// and one required-extension set.
type Prober struct {
	instance           core1_0.CoreInstanceDriver
	surfaceExtension   khr_surface.ExtensionDriver
	surface            khr_surface.Surface
	requiredExtensions []string
}

func NewProber(instance core1_0.CoreInstanceDriver, surfaceExtension khr_surface.ExtensionDriver, surface khr_surface.Surface, requiredExtensions []string) *Prober {
	return &Prober{
		instance:           instance,
		surfaceExtension:   surfaceExtension,
		surface:            surface,
		requiredExtensions: requiredExtensions,
	}
}

// Probe queries device in index order: queue family flags and per-family
// present support, then extension coverage, then (only when every required
// extension is present) the surface capability set.
func (p *Prober) Probe(device core1_0.PhysicalDevice) (*DeviceCapabilityReport, error) {
	report := &DeviceCapabilityReport{Device: device}

	queueFamilies := p.instance.GetPhysicalDeviceQueueFamilyProperties(device)
	for queueFamilyIdx, queueFamily := range queueFamilies {
		capability := QueueFamilyCapability{
			Graphics: (queueFamily.QueueFlags & core1_0.QueueGraphics) != 0,
		}

		supported, _, err := p.surfaceExtension.GetPhysicalDeviceSurfaceSupport(p.surface, device, queueFamilyIdx)
		if err != nil {
			return nil, err
		}
		capability.Present = supported

		report.QueueFamilies = append(report.QueueFamilies, capability)
	}

	available, _, err := p.instance.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return nil, err
	}
	for _, name := range p.requiredExtensions {
		_, hasExtension := available[name]
		if !hasExtension {
			report.MissingExtensions = append(report.MissingExtensions, name)
		}
	}

	if !report.ExtensionsSupported() {
		return report, nil
	}

	surface := &SurfaceCapabilitySet{}
	surface.Capabilities, _, err = p.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(p.surface, device)
	if err != nil {
		return nil, err
	}

	surface.Formats, _, err = p.surfaceExtension.GetPhysicalDeviceSurfaceFormats(p.surface, device)
	if err != nil {
		return nil, err
	}

	surface.PresentModes, _, err = p.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(p.surface, device)
	if err != nil {
		return nil, err
	}

	report.Surface = surface
	return report, nil
}
