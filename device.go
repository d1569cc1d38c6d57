package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
)

// createLogicalDevice creates one queue per unique family in the plan and
// fetches handles for both roles. When one family fills both roles the two
// handles alias the same queue.
func createLogicalDevice(instanceDriver core1_0.CoreInstanceDriver, report *DeviceCapabilityReport, plan QueuePlan, config Config) (core1_0.CoreDeviceDriver, core1_0.Queue, core1_0.Queue, error) {
	var queueOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, family := range plan.UniqueFamilies() {
		queueOptions = append(queueOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	var extensionNames []string
	extensionNames = append(extensionNames, config.DeviceExtensions...)

	// Required on portability implementations (MoltenVK and friends)
	// whenever the device exposes it.
	extensions, _, err := instanceDriver.EnumerateDeviceExtensionProperties(report.Device)
	if err != nil {
		return nil, core1_0.Queue{}, core1_0.Queue{}, err
	}
	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	deviceDriver, _, err := instanceDriver.CreateDevice(report.Device, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueOptions,
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return nil, core1_0.Queue{}, core1_0.Queue{}, errors.Wrap(ErrDeviceCreation, err.Error())
	}

	graphicsQueue := deviceDriver.GetQueue(plan.GraphicsFamily, 0)
	presentQueue := deviceDriver.GetQueue(plan.PresentFamily, 0)
	return deviceDriver, graphicsQueue, presentQueue, nil
}
