package gesture

import (
	"testing"

	"github.com/chetana/airpoint/internal/detector"
)

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		hand detector.HandLandmarks
		want Label
	}{
		{"open hand", detector.OpenHandLandmarks(), LabelOpenHand},
		{"fist", detector.FistLandmarks(), LabelFist},
		{"pinch", detector.PinchLandmarks(), LabelPinch},
		{"two finger", detector.TwoFingerLandmarks(), LabelTwoFinger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.hand, cfg)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyNilHand(t *testing.T) {
	if got := Classify(nil, DefaultConfig()); got != LabelNone {
		t.Errorf("Classify(nil) = %q, want %q", got, LabelNone)
	}
}

func TestClassifyFistBeforePinch(t *testing.T) {
	// In a fist the thumb and index tips curl close enough together to
	// satisfy the pinch distance check. The fist must still win.
	hand := detector.FistLandmarks()
	cfg := DefaultConfig()

	scale := hand.Scale()
	tipDist := detector.Distance(hand.Points[detector.ThumbTip], hand.Points[detector.IndexTip])
	if tipDist >= cfg.PinchRatio*scale {
		t.Fatalf("fixture does not exercise the overlap: tip distance %.4f >= %.4f", tipDist, cfg.PinchRatio*scale)
	}

	if got := Classify(&hand, cfg); got != LabelFist {
		t.Errorf("Classify() = %q, want %q", got, LabelFist)
	}
}

func TestClassifyTwoFingerIgnoresThumb(t *testing.T) {
	cfg := DefaultConfig()

	folded := detector.TwoFingerLandmarks()
	if got := Classify(&folded, cfg); got != LabelTwoFinger {
		t.Fatalf("thumb folded: Classify() = %q, want %q", got, LabelTwoFinger)
	}

	extended := detector.TwoFingerLandmarks()
	extended.Points[detector.ThumbIP] = detector.Point{X: 0.32, Y: 0.67}
	extended.Points[detector.ThumbTip] = detector.Point{X: 0.24, Y: 0.62}
	if got := Classify(&extended, cfg); got != LabelTwoFinger {
		t.Errorf("thumb extended: Classify() = %q, want %q", got, LabelTwoFinger)
	}
}

func TestFingerStates(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("open hand extends all fingers", func(t *testing.T) {
		hand := detector.OpenHandLandmarks()
		states := FingerStates(&hand, cfg.ExtensionRatio)
		for i, extended := range states {
			if !extended {
				t.Errorf("finger %d: extended = false, want true", i)
			}
		}
	})

	t.Run("fist folds all fingers", func(t *testing.T) {
		hand := detector.FistLandmarks()
		states := FingerStates(&hand, cfg.ExtensionRatio)
		for i, extended := range states {
			if extended {
				t.Errorf("finger %d: extended = true, want false", i)
			}
		}
	})

	t.Run("two finger extends index and middle only", func(t *testing.T) {
		hand := detector.TwoFingerLandmarks()
		states := FingerStates(&hand, cfg.ExtensionRatio)
		want := [5]bool{false, true, true, false, false}
		if states != want {
			t.Errorf("FingerStates() = %v, want %v", states, want)
		}
	})
}

func TestClassifyDegenerateScale(t *testing.T) {
	// All landmarks collapsed onto one point gives a zero normalization
	// scale; classification must refuse rather than divide by it.
	var hand detector.HandLandmarks
	if got := Classify(&hand, DefaultConfig()); got != LabelNone {
		t.Errorf("Classify() = %q, want %q", got, LabelNone)
	}
}
