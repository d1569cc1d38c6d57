package vkboot

import "github.com/cockroachdb/errors"

// Bootstrap failures fall into three families. Configuration errors mean the
// machine cannot satisfy the requested setup at all; driver errors mean a
// create call that should have worked was rejected; resource errors mean an
// externally supplied input (shader byte code) could not be read. None of
// them are recoverable: Bootstrap unwinds and the caller is expected to give
// up.
var (
	ErrNoDevicesFound          = errors.New("no rendering devices found")
	ErrNoSuitableDevice        = errors.New("no suitable rendering device found")
	ErrIncompleteQueueFamilies = errors.New("device is missing a graphics or present capable queue family")
	ErrEmptySurfaceSupport     = errors.New("surface reports no formats or no present modes")

	ErrInstanceCreation       = errors.New("instance creation rejected by driver")
	ErrDeviceCreation         = errors.New("logical device creation rejected by driver")
	ErrChainCreation          = errors.New("presentation chain creation rejected by driver")
	ErrImageViewCreation      = errors.New("image view creation rejected by driver")
	ErrPipelineLayoutCreation = errors.New("pipeline layout creation rejected by driver")
	ErrPipelineCreation       = errors.New("graphics pipeline creation rejected by driver")

	ErrShaderUnreadable = errors.New("shader binary unreadable")
)

// IsConfigurationUnavailable reports whether err means the host cannot
// provide the requested configuration (as opposed to a driver refusing a
// call that should have succeeded).
func IsConfigurationUnavailable(err error) bool {
	return errors.Is(err, ErrNoDevicesFound) ||
		errors.Is(err, ErrNoSuitableDevice) ||
		errors.Is(err, ErrIncompleteQueueFamilies) ||
		errors.Is(err, ErrEmptySurfaceSupport)
}

// IsDriverRejected reports whether err came from the driver refusing a
// creation call.
func IsDriverRejected(err error) bool {
	return errors.Is(err, ErrInstanceCreation) ||
		errors.Is(err, ErrDeviceCreation) ||
		errors.Is(err, ErrChainCreation) ||
		errors.Is(err, ErrImageViewCreation) ||
		errors.Is(err, ErrPipelineLayoutCreation) ||
		errors.Is(err, ErrPipelineCreation)
}

// IsResourceUnopenable reports whether err came from an unreadable external
// input.
func IsResourceUnopenable(err error) bool {
	return errors.Is(err, ErrShaderUnreadable)
}
