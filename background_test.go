package panzoom

import "testing"

func TestPatternPhase(t *testing.T) {
	tests := []struct {
		name       string
		offset     float64
		scale      float64
		tile       float64
		wantPhase  float64
		wantScaled float64
	}{
		{"origin", 0, 1, 40, 0, 40},
		{"positive offset", 50, 1, 40, 10, 40},
		{"negative offset", -50, 1, 40, 30, 40},
		{"exact multiple", 80, 1, 40, 0, 40},
		{"zoomed in", 50, 2, 40, 50, 80},
		{"zoomed out", 50, 0.5, 40, 10, 20},
		{"negative zoomed", -10, 2, 40, 70, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, scaled := patternPhase(tt.offset, tt.scale, tt.tile)
			if !approxEqual(phase, tt.wantPhase, epsilon) {
				t.Errorf("phase = %f, want %f", phase, tt.wantPhase)
			}
			if !approxEqual(scaled, tt.wantScaled, epsilon) {
				t.Errorf("scaled = %f, want %f", scaled, tt.wantScaled)
			}
		})
	}
}

func TestPatternPhase_NonNegative(t *testing.T) {
	// Panning far negative must never yield a negative phase, only a wrap.
	for offset := -1000.0; offset < 1000; offset += 7.3 {
		phase, scaled := patternPhase(offset, 1.7, 40)
		if phase < 0 || phase >= scaled {
			t.Fatalf("phase %f out of [0,%f) at offset %f", phase, scaled, offset)
		}
	}
}

func TestPatternPhase_DegenerateTile(t *testing.T) {
	if phase, scaled := patternPhase(50, 0, 40); phase != 0 || scaled != 0 {
		t.Errorf("zero scale: phase=%f scaled=%f, want 0,0", phase, scaled)
	}
	if phase, scaled := patternPhase(50, 1, 0); phase != 0 || scaled != 0 {
		t.Errorf("zero tile: phase=%f scaled=%f, want 0,0", phase, scaled)
	}
}
