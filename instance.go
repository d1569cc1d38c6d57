package vkboot

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

var validationLayers = []string{"VK_LAYER_KHRONOS_validation"}

// createInstance builds the instance with the window system's extensions,
// portability enumeration when the loader offers it, and the validation
// layer when requested.
func createInstance(globalDriver core1_0.GlobalDriver, window Window, config Config) (core1_0.CoreInstanceDriver, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    config.ApplicationName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	windowExtensions := window.InstanceExtensions()
	extensions, _, err := globalDriver.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	for _, ext := range windowExtensions {
		_, hasExt := extensions[ext]
		if !hasExt {
			return nil, errors.Wrapf(ErrInstanceCreation, "window system requires missing instance extension %s", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	if config.Validation {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
	}

	_, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if config.Validation {
		layers, _, err := globalDriver.AvailableLayers()
		if err != nil {
			return nil, err
		}

		for _, layer := range validationLayers {
			_, hasValidation := layers[layer]
			if !hasValidation {
				return nil, errors.Wrapf(ErrInstanceCreation, "validation layer %s not installed", layer)
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		// Covers messages emitted during instance creation itself.
		instanceOptions.Next = debugMessengerOptions()
	}

	instanceDriver, _, err := globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return nil, errors.Wrap(ErrInstanceCreation, err.Error())
	}

	return instanceDriver, nil
}

func debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    logValidationMessage,
	}
}

func setupDebugMessenger(instanceDriver core1_0.CoreInstanceDriver) (ext_debug_utils.ExtensionDriver, ext_debug_utils.DebugUtilsMessenger, error) {
	debugDriver := ext_debug_utils.CreateExtensionDriverFromCoreDriver(instanceDriver)
	messenger, _, err := debugDriver.CreateDebugUtilsMessenger(nil, debugMessengerOptions())
	if err != nil {
		return nil, ext_debug_utils.DebugUtilsMessenger{}, err
	}
	return debugDriver, messenger, nil
}

func logValidationMessage(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	entry := log.WithField("type", msgType.String())
	if (severity & ext_debug_utils.SeverityError) != 0 {
		entry.Error(data.Message)
	} else {
		entry.Warn(data.Message)
	}
	return false
}
