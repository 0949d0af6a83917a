package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCompile(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateCompile() error {
	if strings.ContainsAny(c.Compile.OutputPattern, `/\`) {
		return fmt.Errorf("compile.output_pattern must be a file name, got %q", c.Compile.OutputPattern)
	}
	switch c.Compile.SourceEncoding {
	case "auto", "utf-8", "utf-16le", "utf-16be":
	default:
		return fmt.Errorf("compile.source_encoding: unsupported value %q (want auto, utf-8, utf-16le or utf-16be)", c.Compile.SourceEncoding)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
