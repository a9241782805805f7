package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/extctl/internal/boundary"
	"github.com/danmuck/extctl/internal/hostsim"
	"github.com/danmuck/extctl/internal/lifecycle"
)

type runConfig struct {
	Host        hostsim.Config
	TargetLevel lifecycle.Level
	RunBehavior boundary.EditorRunBehavior
}

func defaultRunConfig() runConfig {
	return runConfig{
		Host:        hostsim.DefaultConfig(),
		TargetLevel: lifecycle.LevelEditor,
		RunBehavior: boundary.ToolClassesOnly,
	}
}

type fileConfig struct {
	LibraryID    string `toml:"library_id"`
	Editor       bool   `toml:"editor"`
	VersionMajor uint32 `toml:"version_major"`
	VersionMinor uint32 `toml:"version_minor"`
	TargetLevel  string `toml:"target_level"`
	RunBehavior  string `toml:"run_behavior"`
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load extctl config: %w", err)
	}

	if meta.IsDefined("library_id") {
		id := strings.TrimSpace(raw.LibraryID)
		if id != "" {
			cfg.Host.LibraryID = id
		}
	}

	if meta.IsDefined("editor") {
		cfg.Host.Editor = raw.Editor
	}

	if meta.IsDefined("version_major") {
		cfg.Host.VersionMajor = raw.VersionMajor
	}

	if meta.IsDefined("version_minor") {
		cfg.Host.VersionMinor = raw.VersionMinor
	}

	if meta.IsDefined("target_level") {
		level, err := lifecycle.ParseLevel(raw.TargetLevel)
		if err != nil {
			return runConfig{}, fmt.Errorf("parse target_level: %w", err)
		}
		cfg.TargetLevel = level
	}

	if meta.IsDefined("run_behavior") {
		behavior, err := boundary.ParseEditorRunBehavior(raw.RunBehavior)
		if err != nil {
			return runConfig{}, fmt.Errorf("parse run_behavior: %w", err)
		}
		cfg.RunBehavior = behavior
	}

	return cfg, nil
}
