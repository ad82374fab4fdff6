package main

import (
	"flag"
	"runtime"

	"glsandbox/internal/logger"
	"glsandbox/internal/util"
	"glsandbox/pkg/config"
	"glsandbox/pkg/engine"
	"glsandbox/pkg/gui"
	"glsandbox/pkg/sandbox"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)

	log := logger.NewLogger(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fileLog, err := logger.NewMultiLogger(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			log.Warnf("Logging to console only: %v", err)
		} else {
			log = fileLog
		}
	}
	defer log.Close()

	if !util.FileExists(*configPath) {
		log.Infof("No config at %s, using defaults", *configPath)
	} else if cfgErr != nil {
		log.Warnf("Configuration: %v", cfgErr)
	}
	log.Info("Starting OpenGL sandbox...")

	window, err := engine.NewWindow(cfg.Window, log.Named("window"))
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	// The GUI installs its input callbacks before the application chains onto them
	host, err := gui.NewHost(window.Handle(), log.Named("gui"))
	if err != nil {
		window.Destroy()
		log.Fatalf("Failed to initialize GUI: %v", err)
	}

	app := engine.NewApplication(window, host, cfg.Window.FrameRate, log)
	if err := app.PushLayer(sandbox.NewLayer(app, cfg, log.Named("sandbox"))); err != nil {
		log.Fatalf("Failed to attach sandbox: %v", err)
	}

	log.Info("Sandbox attached, starting main loop...")
	if err := app.Run(); err != nil {
		log.Fatalf("Frame failed: %v", err)
	}
}
