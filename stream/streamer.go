package stream

import (
	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/curvetx/util"
)

// A Streamer transmits drawing command frames as binary over MQTT to a
// display client that rasterises them.
type Streamer struct {
	client     mqtt.Client
	topic      string
	canvas     *Canvas
	driver     *Driver
	controller *Controller
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.canvas = NewCanvas(config.canvasWidth(), config.canvasHeight())

	fan := NewFan(config.curveCount(), config.amplitude(), config.periodMs(),
		config.tension(), config.strokePalette())

	gradient := GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquiose
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}
	weavePalette := HuePalette{
		Table:      gradient,
		Saturation: util.RandomiseSaturation(0.6, 1.0),
		Luminance:  0.5,
	}
	weave := NewWeave(config.curveCount(), config.amplitude(), config.periodMs(),
		config.tension(), weavePalette)

	s.controller = NewController(config.cycleTime(), fan, weave)

	s.driver = NewDriver(s.canvas, NewTickerClock(config.frameInterval()), s.controller)
	s.driver.OnFrame(s.publish)

	return s
}

// publish sends the canvas's recorded frame as binary over MQTT.
func (s *Streamer) publish() {
	b, _ := s.canvas.MarshalBinary()
	token := s.client.Publish(s.topic, 0, false, b)
	token.Wait()
}

// Run causes the Streamer to transmit frames continuously.
func (s *Streamer) Run() {
	s.driver.Start()
	s.controller.Run()
}

// Stop tears the stream down; no further frames are drawn or published.
func (s *Streamer) Stop() {
	s.driver.Stop()
	s.controller.Stop()
}
