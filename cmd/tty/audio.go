package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const cueSampleRate = beep.SampleRate(44100)

func (d *Driver) initAudio() error {
	err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

// playCue 播放一个短促的提示音
func (d *Driver) playCue() {
	if !d.audioInit {
		return
	}

	duration := cueSampleRate.N(60 * time.Millisecond)
	sine, err := generators.SineTone(cueSampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(duration, sine))
}
