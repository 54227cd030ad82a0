package viz

import (
	"image/gif"
	"os"
)

// saveGIF writes the captured frames and ends the recording.
func (m *Model) saveGIF() {
	defer func() { m.recording, m.frames = false, nil }()
	if len(m.frames) == 0 {
		return
	}

	delay := max(1, int(m.cfg.FrameInterval().Milliseconds()/10))
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(recordingFile)
	if err != nil {
		m.notice = err.Error()
		return
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = "saved " + recordingFile
}
