package vkboot

import (
	log "github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
)

type probeFunc func(core1_0.PhysicalDevice) (*DeviceCapabilityReport, error)

// selectDevice walks candidates in enumeration order and returns the report
// of the first suitable one. There is no scoring: the first match wins. An
// empty candidate list and a list with no suitable candidate are distinct
// failures.
func selectDevice(candidates []core1_0.PhysicalDevice, probe probeFunc) (*DeviceCapabilityReport, error) {
	if len(candidates) == 0 {
		return nil, ErrNoDevicesFound
	}

	for candidateIdx, device := range candidates {
		report, err := probe(device)
		if err != nil {
			return nil, err
		}

		if suitable(report) {
			log.WithField("device", candidateIdx).Info("selected rendering device")
			return report, nil
		}
	}

	return nil, ErrNoSuitableDevice
}

// suitable is the selection predicate: a graphics family, a present family
// (possibly the same one), full extension coverage, and a surface that
// offers at least one format and one present mode.
func suitable(report *DeviceCapabilityReport) bool {
	if !report.HasGraphicsFamily() || !report.HasPresentFamily() {
		return false
	}
	if !report.ExtensionsSupported() {
		return false
	}
	if report.Surface == nil {
		return false
	}
	return len(report.Surface.Formats) > 0 && len(report.Surface.PresentModes) > 0
}
