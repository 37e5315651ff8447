package stream

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/curvetx/curve"
)

// Defaults for every animation parameter; a zero value in the config
// selects the default.
const (
	DefaultCanvasWidth     = 800
	DefaultCanvasHeight    = 600
	DefaultCurveCount      = 70
	DefaultAmplitude       = 40.0
	DefaultPeriodMs        = 5000
	DefaultFrameIntervalMs = 33
	DefaultCycleTimeSecs   = 120
	DefaultStartColour     = "#3023AE"
	DefaultEndColour       = "#C86DD7"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		}
	} `yaml:"mqtt"`
	Canvas struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"canvas"`
	Animation struct {
		Curves          int     `yaml:"curves"`
		Amplitude       float64 `yaml:"amplitude"`
		PeriodMs        int64   `yaml:"periodMs"`
		Tension         float64 `yaml:"tension"`
		FrameIntervalMs int64   `yaml:"frameIntervalMs"`
		CycleTimeSecs   int64   `yaml:"cycleTimeSecs"`
		StartColour     string  `yaml:"startColour"`
		EndColour       string  `yaml:"endColour"`
	} `yaml:"animation"`
}

func (c Config) canvasWidth() float64 {
	if c.Canvas.Width <= 0 {
		return DefaultCanvasWidth
	}
	return c.Canvas.Width
}

func (c Config) canvasHeight() float64 {
	if c.Canvas.Height <= 0 {
		return DefaultCanvasHeight
	}
	return c.Canvas.Height
}

func (c Config) curveCount() int {
	if c.Animation.Curves <= 0 {
		return DefaultCurveCount
	}
	return c.Animation.Curves
}

func (c Config) amplitude() float64 {
	if c.Animation.Amplitude <= 0 {
		return DefaultAmplitude
	}
	return c.Animation.Amplitude
}

func (c Config) periodMs() int64 {
	if c.Animation.PeriodMs <= 0 {
		return DefaultPeriodMs
	}
	return c.Animation.PeriodMs
}

func (c Config) tension() float64 {
	if c.Animation.Tension <= 0 {
		return curve.DefaultTension
	}
	return c.Animation.Tension
}

func (c Config) frameInterval() time.Duration {
	intervalMs := c.Animation.FrameIntervalMs
	if intervalMs <= 0 {
		intervalMs = DefaultFrameIntervalMs
	}
	return time.Duration(intervalMs) * time.Millisecond
}

func (c Config) cycleTime() time.Duration {
	secs := c.Animation.CycleTimeSecs
	if secs <= 0 {
		secs = DefaultCycleTimeSecs
	}
	return time.Duration(secs) * time.Second
}

func (c Config) strokePalette() LinearPalette {
	start, err := colorful.Hex(c.Animation.StartColour)
	if err != nil {
		start, _ = colorful.Hex(DefaultStartColour)
	}
	end, err := colorful.Hex(c.Animation.EndColour)
	if err != nil {
		end, _ = colorful.Hex(DefaultEndColour)
	}
	return LinearPalette{Start: start, End: end}
}
