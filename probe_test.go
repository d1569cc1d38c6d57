package vkboot

import "testing"

func TestReportFamilyAccessors(t *testing.T) {
	report := &DeviceCapabilityReport{
		QueueFamilies: []QueueFamilyCapability{
			{},
			{Graphics: true},
		},
	}

	if !report.HasGraphicsFamily() {
		t.Error("graphics family at index 1 not found")
	}
	if report.HasPresentFamily() {
		t.Error("present family reported but none exists")
	}
}

func TestReportExtensionsSupported(t *testing.T) {
	report := &DeviceCapabilityReport{}
	if !report.ExtensionsSupported() {
		t.Error("empty missing list should mean supported")
	}

	report.MissingExtensions = []string{"VK_KHR_swapchain"}
	if report.ExtensionsSupported() {
		t.Error("missing extension not reflected")
	}
}
