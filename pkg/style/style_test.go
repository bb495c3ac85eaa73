package style

import (
	"testing"

	"github.com/cfgviz/cfgviz/pkg/cfg"
)

func TestMeasure_EmptyBodyGetsOneLine(t *testing.T) {
	s := Default()

	w, h := s.Measure(cfg.Block{Title: "entry"})

	if w != s.Width {
		t.Errorf("width = %v, want %v", w, s.Width)
	}
	want := s.HeaderHeight + 2*s.PaddingY + s.LineHeight
	if h != want {
		t.Errorf("height = %v, want %v", h, want)
	}
}

func TestMeasure_HeightScalesWithBody(t *testing.T) {
	s := Default()

	_, one := s.Measure(cfg.Block{Body: []string{"mov eax, 1"}})
	_, three := s.Measure(cfg.Block{Body: []string{"a", "b", "c"}})

	if three-one != 2*s.LineHeight {
		t.Errorf("3 lines - 1 line = %v, want %v", three-one, 2*s.LineHeight)
	}
}

func TestMeasure_WidthIsFixed(t *testing.T) {
	s := Default()

	w1, _ := s.Measure(cfg.Block{Title: "x"})
	w2, _ := s.Measure(cfg.Block{Body: []string{"a very long instruction line indeed"}})

	if w1 != w2 {
		t.Errorf("widths differ: %v vs %v", w1, w2)
	}
}
