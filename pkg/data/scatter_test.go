package data

import (
	"testing"
)

func TestScatterExtent(t *testing.T) {
	s, err := NewScatter("pts", []float64{0, 5, 10}, []float64{100, 1, 50})
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}

	ext := s.Extent(Window{})
	if !ext.OK {
		t.Fatal("extent not OK")
	}
	if ext.XLow != 0 || ext.XUp != 10 {
		t.Errorf("x-range = [%v, %v], want [0, 10]", ext.XLow, ext.XUp)
	}
	if ext.YLow != 1 || ext.YUp != 100 {
		t.Errorf("y-range = [%v, %v], want [1, 100]", ext.YLow, ext.YUp)
	}
}

func TestScatterExtentEmpty(t *testing.T) {
	s, err := NewScatter("pts", nil, nil)
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}
	if ext := s.Extent(Window{}); ext.OK {
		t.Errorf("extent = %+v, want not OK", ext)
	}
}

func TestScatterExtentUserXLowFiltersY(t *testing.T) {
	s, err := NewScatter("pts", []float64{0, 5, 10}, []float64{100, 1, 50})
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}

	// The point at x=0 falls below the fixed lower bound and is excluded
	// from every axis.
	ext := s.Extent(Window{XLow: Float(2)})
	if ext.XLow != 2 || ext.XUp != 10 {
		t.Errorf("x-range = [%v, %v], want [2, 10]", ext.XLow, ext.XUp)
	}
	if ext.YLow != 1 || ext.YUp != 50 {
		t.Errorf("y-range = [%v, %v], want [1, 50]", ext.YLow, ext.YUp)
	}
}

func TestScatterExtentUserXUpFiltersY(t *testing.T) {
	s, err := NewScatter("pts", []float64{0, 5, 10}, []float64{100, 1, 50})
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}

	ext := s.Extent(Window{XUp: Float(7)})
	if ext.XLow != 0 || ext.XUp != 7 {
		t.Errorf("x-range = [%v, %v], want [0, 7]", ext.XLow, ext.XUp)
	}
	if ext.YLow != 1 || ext.YUp != 100 {
		t.Errorf("y-range = [%v, %v], want [1, 100]", ext.YLow, ext.YUp)
	}
}

func TestScatterExtentUserYPassThrough(t *testing.T) {
	s, err := NewScatter("pts", []float64{0, 5}, []float64{1, 2})
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}

	ext := s.Extent(Window{YLow: Float(-1), YUp: Float(10)})
	if ext.YLow != -1 || ext.YUp != 10 {
		t.Errorf("y-range = [%v, %v], want [-1, 10]", ext.YLow, ext.YUp)
	}
}

func TestNewScatterValidation(t *testing.T) {
	if _, err := NewScatter("pts", []float64{1, 2}, []float64{1}); err == nil {
		t.Error("length mismatch accepted")
	}
}

func TestScatterClone(t *testing.T) {
	s, err := NewScatter("pts", []float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("NewScatter: %v", err)
	}

	clone, ok := s.Clone("pts_0").(*Scatter)
	if !ok {
		t.Fatal("clone is not a *Scatter")
	}
	if clone.Name() != "pts_0" || clone.Len() != 2 {
		t.Errorf("clone = %q with %d points, want pts_0 with 2", clone.Name(), clone.Len())
	}

	clone.xs[0] = 99
	if s.xs[0] != 1 {
		t.Error("mutating the clone changed the original")
	}
}
