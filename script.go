package panzoom

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected gestures and screenshots across frames for
// automated interaction testing. Attach to a Board via SetScript.
//
// Supported actions:
//
//	pan         press at (fromX, fromY), drag to (toX, toY) over frames
//	drag        same input shape; whether it pans or drags an element is
//	            decided by the hit test, exactly like real input
//	wheel       wheel event at (x, y) with the given delta
//	pinch       two-finger pinch at (x, y) from fromX to toX apart
//	reset       restore the identity viewport
//	wait        idle for frames frames
//	screenshot  capture a labeled PNG
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// SetScript attaches a gesture script to the board. The script advances by
// one step whenever the injection queue has drained.
func (b *Board) SetScript(script *Script) {
	b.script = script
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Board.Update.
func (s *Script) step(b *Board) {
	if s.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "pan", "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wheel":
		b.InjectWheel(st.X, st.Y, st.Delta)
	case "pinch":
		frames := st.Frames
		if frames < 1 {
			frames = 4
		}
		b.InjectPinch(st.X, st.Y, st.FromX, st.ToX, frames)
	case "reset":
		b.vp.Reset()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		b.Screenshot(st.Label)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(b.injectQueue) == 0 {
		s.done = true
	}
}
