package figure

// Default axis sizes, as fractions of the figure height.
const (
	DefaultLabelSize = 0.02
	DefaultTitleSize = 0.02
	DefaultTickSize  = 0.01
)

// AxisConfig collects the user-settable attributes of one axis. Limits
// left nil are derived from the data during Create.
type AxisConfig struct {
	Low  *float64
	High *float64

	Title string

	// LabelSize, TitleSize and TickSize are fractions of the figure
	// height, converted to pixels when the region is realized.
	LabelSize float64
	TitleSize float64
	TickSize  float64

	Log bool

	// AccountForErrors widens data-derived y-ranges by the per-bin
	// errors of binned objects.
	AccountForErrors bool
}

// NewAxisConfig returns an axis with the package defaults.
func NewAxisConfig() AxisConfig {
	return AxisConfig{
		LabelSize:        DefaultLabelSize,
		TitleSize:        DefaultTitleSize,
		TickSize:         DefaultTickSize,
		AccountForErrors: true,
	}
}

// SetLimits fixes both bounds.
func (a *AxisConfig) SetLimits(low, high float64) {
	a.Low = &low
	a.High = &high
}

// ClearLimits reverts both bounds to data-derived.
func (a *AxisConfig) ClearLimits() {
	a.Low = nil
	a.High = nil
}
