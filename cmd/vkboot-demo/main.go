package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/loov/hrtime"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/MrVideo/vkboot"
)

var (
	validation = flag.Bool("validation", false, "enable the Khronos validation layer")
	vertPath   = flag.String("vert", "", "path to a compiled vertex shader (.spv)")
	fragPath   = flag.String("frag", "", "path to a compiled fragment shader (.spv)")
	width      = flag.Int("width", 800, "window width in pixels")
	height     = flag.Int("height", 600, "window height in pixels")
)

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "sdl init")
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("vkboot",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(*width), int32(*height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	defer window.Destroy()

	config := vkboot.DefaultConfig()
	config.ApplicationName = "vkboot demo"
	config.Validation = *validation
	config.VertexShaderPath = *vertPath
	config.FragmentShaderPath = *fragPath

	start := hrtime.Now()
	ctx, err := vkboot.Bootstrap(vkboot.WrapSDLWindow(window), config)
	if err != nil {
		return errors.Wrap(err, "bootstrap")
	}
	defer ctx.Teardown()

	log.WithFields(log.Fields{
		"elapsed":        hrtime.Since(start),
		"graphicsFamily": ctx.Queues.GraphicsFamily,
		"presentFamily":  ctx.Queues.PresentFamily,
		"imageCount":     len(ctx.Chain.Images),
		"extent":         ctx.Plan.Extent,
		"presentMode":    ctx.Plan.PresentMode,
	}).Info("context ready")

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				return nil
			}
		}
		sdl.Delay(16)
	}
}

func main() {
	runtime.LockOSThread()
	flag.Parse()

	if err := run(); err != nil {
		if vkboot.IsConfigurationUnavailable(err) {
			log.Errorf("this machine cannot provide the requested configuration: %+v", err)
		} else {
			log.Errorf("%+v", err)
		}
		os.Exit(1)
	}
}
