package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/extctl/internal/config"
	"github.com/danmuck/extctl/internal/hostsim"
	"github.com/danmuck/extctl/internal/lifecycle"
	"github.com/danmuck/extctl/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "", "extctl run config (toml)")
	manifestPath := flag.String("manifest", "", "extension manifest (toml); its editor policy overrides the run config")
	editor := flag.Bool("editor", false, "simulate the host in editor mode")
	level := flag.String("level", "", "target level: core|servers|scene|editor")
	flag.Parse()

	if err := run(*cfgPath, *manifestPath, *editor, *level); err != nil {
		fmt.Fprintf(os.Stderr, "extctl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, manifestPath string, editor bool, level string) error {
	logging.ConfigureRuntime()
	log := logging.Logger()

	cfg := defaultRunConfig()
	if cfgPath != "" {
		loaded, err := loadRunConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if editor {
		cfg.Host.Editor = true
	}
	if level != "" {
		target, err := lifecycle.ParseLevel(level)
		if err != nil {
			return err
		}
		cfg.TargetLevel = target
	}
	if manifestPath != "" {
		manifest, err := config.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		cfg.RunBehavior = manifest.EditorRunBehavior()
		log.Info().
			Str("extension", manifest.Extension.Name).
			Str("entry", manifest.Extension.Entry).
			Str("compatibility_minimum", manifest.Host.CompatibilityMinimum).
			Msg("extctl: manifest loaded")
	}

	if err := declareDemoClasses(); err != nil {
		return err
	}

	host := hostsim.New(cfg.Host, log)
	lib := demoLibrary{behavior: cfg.RunBehavior}

	if err := host.Load(lib); err != nil {
		return err
	}
	if err := host.InitializeTo(cfg.TargetLevel); err != nil {
		return err
	}

	for _, name := range host.RegisteredClasses() {
		log.Info().Str("class", name).Msg("extctl: class visible to host")
	}

	if err := host.DeinitializeFrom(cfg.TargetLevel); err != nil {
		return err
	}
	host.Unload()
	return nil
}
