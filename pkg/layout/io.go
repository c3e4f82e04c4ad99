package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Figure Serialization API
// =============================================================================

// MarshalFigure serializes a Figure to pretty-printed JSON bytes.
func MarshalFigure(f Figure) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// UnmarshalFigure deserializes JSON bytes into a Figure.
// Validates dimensions and that every mark carries the payload its
// kind requires.
func UnmarshalFigure(data []byte) (Figure, error) {
	var f Figure
	if err := json.Unmarshal(data, &f); err != nil {
		return Figure{}, fmt.Errorf("unmarshal figure: %w", err)
	}
	if err := Validate(f); err != nil {
		return Figure{}, err
	}
	return f, nil
}

// Validate checks the structural invariants of a Figure.
func Validate(f Figure) error {
	if f.WidthPx <= 0 || f.HeightPx <= 0 {
		return fmt.Errorf("figure must have positive pixel dimensions, got %dx%d", f.WidthPx, f.HeightPx)
	}
	for _, p := range f.Pads {
		if p.X1 <= p.X0 || p.Y1 <= p.Y0 {
			return fmt.Errorf("pad %s has a degenerate region", p.Name)
		}
		for _, m := range p.Marks {
			if err := validateMark(m); err != nil {
				return fmt.Errorf("pad %s: %w", p.Name, err)
			}
		}
	}
	return nil
}

func validateMark(m Mark) error {
	switch m.Kind {
	case MarkHist:
		if m.Hist == nil {
			return fmt.Errorf("mark %s: hist mark must contain hist data", m.Name)
		}
	case MarkHist2D:
		if m.Hist2D == nil {
			return fmt.Errorf("mark %s: hist2d mark must contain hist2d data", m.Name)
		}
	case MarkCurve:
		if m.Curve == nil {
			return fmt.Errorf("mark %s: curve mark must contain curve data", m.Name)
		}
	case MarkScatter:
		if m.Scatter == nil {
			return fmt.Errorf("mark %s: scatter mark must contain scatter data", m.Name)
		}
	default:
		return fmt.Errorf("mark %s: unknown kind %q", m.Name, m.Kind)
	}
	return nil
}

// WriteFigureFile writes a Figure to a JSON file.
func WriteFigureFile(f Figure, path string) error {
	data, err := MarshalFigure(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFigureFile reads a Figure from a JSON file.
func ReadFigureFile(path string) (Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Figure{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalFigure(data)
}
