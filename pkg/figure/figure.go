package figure

import (
	"fmt"

	"github.com/matzehuels/gridplot/pkg/data"
	"github.com/matzehuels/gridplot/pkg/errors"
	"github.com/matzehuels/gridplot/pkg/grid"
	"github.com/matzehuels/gridplot/pkg/layout"
	"github.com/matzehuels/gridplot/pkg/observability"
	"github.com/matzehuels/gridplot/pkg/render"
)

// figureNameBase seeds generated figure names.
const figureNameBase = "figure"

// Option configures a Figure at construction.
type Option func(*Figure)

// WithNamer sets the naming service used for figure names and object
// clones.
func WithNamer(n *Namer) Option { return func(f *Figure) { f.namer = n } }

// WithHooks routes warnings to h instead of the globally registered
// hooks.
func WithHooks(h observability.WarningHooks) Option { return func(f *Figure) { f.hooks = h } }

// WithName overrides the generated figure name.
func WithName(name string) Option { return func(f *Figure) { f.name = name } }

// Figure owns a cell grid and the plot regions defined on it. Regions
// are created with DefinePlot, filled through the region (or the
// figure's proxy methods, which target the current region) and frozen
// by Create.
type Figure struct {
	// DefaultX, DefaultY and DefaultZ seed the axis settings of every
	// newly defined region.
	DefaultX AxisConfig
	DefaultY AxisConfig
	DefaultZ AxisConfig

	// DefaultLegend seeds the legend settings of every newly defined
	// region.
	DefaultLegend LegendConfig

	name  string
	grid  grid.Options
	occ   *grid.Occupancy
	namer *Namer
	hooks observability.WarningHooks

	regions []*Region
	current *Region

	created bool
	doc     layout.Figure
}

// New builds a figure over the given grid. A one-cell grid defines its
// sole region immediately, so content can be added without an explicit
// DefinePlot call.
func New(opts grid.Options, options ...Option) (*Figure, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	f := &Figure{
		DefaultX:      NewAxisConfig(),
		DefaultY:      NewAxisConfig(),
		DefaultZ:      NewAxisConfig(),
		DefaultLegend: NewLegendConfig(),
		grid:          opts,
		occ:           grid.NewOccupancy(opts.Cols, opts.Rows),
	}
	for _, o := range options {
		o(f)
	}
	if f.namer == nil {
		f.namer = DefaultNamer()
	}
	if f.name == "" {
		f.name = f.namer.Next(figureNameBase)
	}

	if opts.Cols == 1 && opts.Rows == 1 {
		if _, err := f.DefinePlot(0, 0); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Name returns the figure name.
func (f *Figure) Name() string { return f.name }

// Grid returns the validated grid options.
func (f *Figure) Grid() grid.Options { return f.grid }

// Regions returns all defined regions in definition order.
func (f *Figure) Regions() []*Region {
	out := make([]*Region, len(f.regions))
	copy(out, f.regions)
	return out
}

// DefinePlot claims a cell span and makes the new region current.
// Called with no arguments it auto-places into the lowest free cell,
// with two arguments (col, row) it claims a single cell, and with four
// (colLow, rowLow, colUp, rowUp) an explicit span. On a one-cell grid
// the region defined at construction is returned instead of a new one.
func (f *Figure) DefinePlot(cells ...int) (*Region, error) {
	if f.created {
		return nil, errors.New(errors.ErrCodeAlreadyCreated,
			"figure %s is already created", f.name)
	}

	if f.grid.Cols == 1 && f.grid.Rows == 1 && len(f.regions) > 0 {
		f.current = f.regions[0]
		return f.current, nil
	}

	var span grid.Span
	switch len(cells) {
	case 0:
		col, row, ok := f.occ.FreeCell()
		if !ok {
			return nil, errors.New(errors.ErrCodeNoFreeCells,
				"no free cells left in %dx%d grid", f.grid.Cols, f.grid.Rows)
		}
		span = grid.Cell(col, row)
	case 2:
		span = grid.Cell(cells[0], cells[1])
	case 4:
		span = grid.Span{ColLow: cells[0], RowLow: cells[1], ColUp: cells[2], RowUp: cells[3]}
	default:
		return nil, errors.New(errors.ErrCodeInvalidSpan,
			"a plot span takes 0, 2 or 4 cell indices, got %d", len(cells))
	}

	rect, err := f.grid.Rect(span)
	if err != nil {
		return nil, err
	}

	if taken := f.occ.Claim(span); len(taken) > 0 {
		warn(f.warningHooks(), observability.WarnOverlap,
			"cells %v are already taken, plots may overlap", taken)
	}

	r := &Region{
		XAxis:   f.DefaultX,
		YAxis:   f.DefaultY,
		ZAxis:   f.DefaultZ,
		Legend:  f.DefaultLegend,
		id:      len(f.regions),
		span:    span,
		rect:    rect,
		margins: f.grid.SpanMargins(span),
		fig:     f,
	}
	f.regions = append(f.regions, r)
	f.current = r
	return r, nil
}

// ChangePlot makes the region with the given id current and returns
// it. A negative id returns the current region without switching,
// failing when none is defined yet.
func (f *Figure) ChangePlot(id int) (*Region, error) {
	if id < 0 {
		if f.current == nil {
			return nil, errors.New(errors.ErrCodeNoCurrentPlot,
				"figure %s has no plot defined yet", f.name)
		}
		return f.current, nil
	}
	if id >= len(f.regions) {
		return nil, errors.New(errors.ErrCodeNotFound,
			"figure %s has no plot %d, %d are defined", f.name, id, len(f.regions))
	}
	f.current = f.regions[id]
	return f.current, nil
}

// Current returns the current region.
func (f *Figure) Current() (*Region, error) { return f.ChangePlot(-1) }

// AddObject forwards to the current region, warning when none exists.
func (f *Figure) AddObject(obj data.Boundable, style *Style, label string) {
	if f.current == nil {
		warn(f.warningHooks(), observability.WarnNoCurrentPlot,
			"no current plot to add object to")
		return
	}
	f.current.AddObject(obj, style, label)
}

// AddObjects forwards to the current region, warning when none exists.
func (f *Figure) AddObjects(objs ...data.Boundable) {
	if f.current == nil {
		warn(f.warningHooks(), observability.WarnNoCurrentPlot,
			"no current plot to add objects to")
		return
	}
	f.current.AddObjects(objs...)
}

// AddText forwards to the current region, warning when none exists.
func (f *Figure) AddText(t TextSpec) {
	if f.current == nil {
		warn(f.warningHooks(), observability.WarnNoCurrentPlot,
			"no current plot to add text to")
		return
	}
	f.current.AddText(t)
}

// AddLine forwards to the current region, warning when none exists.
func (f *Figure) AddLine(l LineSpec) {
	if f.current == nil {
		warn(f.warningHooks(), observability.WarnNoCurrentPlot,
			"no current plot to add line to")
		return
	}
	f.current.AddLine(l)
}

// CreateOption adjusts how Create resolves the figure.
type CreateOption func(*createConfig)

type createConfig struct {
	useObjectTitles bool
}

// WithoutObjectTitles keeps blank axis titles blank instead of
// inheriting them from the first titled object.
func WithoutObjectTitles() CreateOption {
	return func(c *createConfig) { c.useObjectTitles = false }
}

// Create resolves every region and assembles the layout document.
// Regions are realized in share-dependency order, so a region that
// borrows axis limits sees its sibling's resolved values. The document
// lists pads in definition order; regions without content produce no
// pad. Create runs once per figure.
func (f *Figure) Create(opts ...CreateOption) error {
	if f.created {
		return errors.New(errors.ErrCodeAlreadyCreated,
			"figure %s is already created", f.name)
	}

	cfg := createConfig{useObjectTitles: true}
	for _, o := range opts {
		o(&cfg)
	}

	order, err := shareOrder(f.regions)
	if err != nil {
		return err
	}

	pads := make([]layout.Pad, len(f.regions))
	produced := make([]bool, len(f.regions))
	for _, i := range order {
		pad, ok, err := f.regions[i].realize(fmt.Sprintf("%s_pad_%d", f.name, i), cfg)
		if err != nil {
			return err
		}
		pads[i] = pad
		produced[i] = ok
	}

	doc := layout.Figure{
		Name:     f.name,
		WidthPx:  f.grid.Width,
		HeightPx: f.grid.Height,
	}
	for i := range f.regions {
		if produced[i] {
			doc.Pads = append(doc.Pads, pads[i])
		}
	}

	f.doc = doc
	f.created = true
	return nil
}

// Layout returns the document assembled by Create.
func (f *Figure) Layout() (layout.Figure, error) {
	if !f.created {
		return layout.Figure{}, errors.New(errors.ErrCodeNotCreated,
			"figure %s is not created yet", f.name)
	}
	return f.doc, nil
}

// Save renders the created figure to path, dispatching on the file
// extension.
func (f *Figure) Save(path string) error {
	doc, err := f.Layout()
	if err != nil {
		return err
	}
	return render.Save(doc, path)
}

func (f *Figure) warningHooks() observability.WarningHooks {
	if f.hooks != nil {
		return f.hooks
	}
	return observability.Warnings()
}
