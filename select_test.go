package vkboot

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func suitableReport() *DeviceCapabilityReport {
	return &DeviceCapabilityReport{
		QueueFamilies: []QueueFamilyCapability{
			{Graphics: true, Present: true},
		},
		Surface: &SurfaceCapabilitySet{
			Capabilities: &khr_surface.SurfaceCapabilities{MinImageCount: 2},
			Formats: []khr_surface.SurfaceFormat{
				{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
			},
			PresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFO},
		},
	}
}

func cannedProbe(reports ...*DeviceCapabilityReport) probeFunc {
	calls := 0
	return func(core1_0.PhysicalDevice) (*DeviceCapabilityReport, error) {
		report := reports[calls]
		calls++
		return report, nil
	}
}

func TestSelectDeviceEmptyList(t *testing.T) {
	_, err := selectDevice(nil, cannedProbe())
	if !errors.Is(err, ErrNoDevicesFound) {
		t.Errorf("got %v, want ErrNoDevicesFound", err)
	}
	if errors.Is(err, ErrNoSuitableDevice) {
		t.Error("empty-list failure must not match ErrNoSuitableDevice")
	}
}

func TestSelectDeviceNoneSuitable(t *testing.T) {
	devices := make([]core1_0.PhysicalDevice, 2)
	unsuitable := &DeviceCapabilityReport{}

	_, err := selectDevice(devices, cannedProbe(unsuitable, unsuitable))
	if !errors.Is(err, ErrNoSuitableDevice) {
		t.Errorf("got %v, want ErrNoSuitableDevice", err)
	}
	if errors.Is(err, ErrNoDevicesFound) {
		t.Error("no-suitable failure must not match ErrNoDevicesFound")
	}
}

func TestSelectDeviceFirstMatchWins(t *testing.T) {
	devices := make([]core1_0.PhysicalDevice, 3)
	second := suitableReport()
	third := suitableReport()

	report, err := selectDevice(devices, cannedProbe(&DeviceCapabilityReport{}, second, third))
	if err != nil {
		t.Fatal(err)
	}
	if report != second {
		t.Error("expected the first suitable report, in enumeration order")
	}
}

func TestSelectDeviceProbeError(t *testing.T) {
	devices := make([]core1_0.PhysicalDevice, 1)
	probeErr := errors.New("surface query failed")

	_, err := selectDevice(devices, func(core1_0.PhysicalDevice) (*DeviceCapabilityReport, error) {
		return nil, probeErr
	})
	if !errors.Is(err, probeErr) {
		t.Errorf("got %v, want the probe error", err)
	}
}

func TestSuitablePredicate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DeviceCapabilityReport)
		want   bool
	}{
		{"complete", func(*DeviceCapabilityReport) {}, true},
		{"no graphics family", func(r *DeviceCapabilityReport) {
			r.QueueFamilies = []QueueFamilyCapability{{Present: true}}
		}, false},
		{"no present family", func(r *DeviceCapabilityReport) {
			r.QueueFamilies = []QueueFamilyCapability{{Graphics: true}}
		}, false},
		{"missing extension", func(r *DeviceCapabilityReport) {
			r.MissingExtensions = []string{"VK_KHR_swapchain"}
			r.Surface = nil
		}, false},
		{"no formats", func(r *DeviceCapabilityReport) {
			r.Surface.Formats = nil
		}, false},
		{"no present modes", func(r *DeviceCapabilityReport) {
			r.Surface.PresentModes = nil
		}, false},
	}

	for _, tt := range tests {
		report := suitableReport()
		tt.mutate(report)
		if got := suitable(report); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
