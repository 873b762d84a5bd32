package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

var currentMode = regexp.MustCompile(`current (\d+) x (\d+)`)

// Runner runs a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ParseXrandr extracts the current screen size from `xrandr --current`.
func ParseXrandr(out []byte) (int, int, error) {
	m := currentMode.FindSubmatch(out)
	if m == nil {
		return 0, 0, errors.New("no current mode in xrandr output")
	}
	w, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(string(m[2]))
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad screen size %dx%d", w, h)
	}
	return w, h, nil
}

// DetectResolution asks xrandr for the screen size. Any failure is logged
// and the configured size is kept.
func (c *Config) DetectResolution(ctx context.Context, run Runner) {
	if run == nil {
		run = execRunner
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := run(ctx, "xrandr", "--current")
	if err == nil {
		var w, h int
		if w, h, err = ParseXrandr(out); err == nil {
			c.Width, c.Height = w, h
			log.Printf("Detected screen resolution %dx%d", w, h)
			return
		}
	}
	log.Printf("Resolution detection failed, using %dx%d: %v", c.Width, c.Height, err)
}
