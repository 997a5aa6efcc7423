package parameter

// Terminal cell to pixel mapping
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Layout
const (
	// LabelPaddingCells is added on each side of a bubble label when measuring
	LabelPaddingCells = 1

	// FooterRows is reserved at the bottom for the hills and the handle dock
	FooterRows = 5

	// HillPeakRows is the tallest hill crest above the bottom row
	HillPeakRows = 4

	// HandleDockX is the handle's resting column measured from the right edge
	HandleDockX = 4

	// PointerID is the id assigned to the mouse; terminals report a single pointer
	PointerID = 1
)

// Glyphs
const (
	HandGlyph   = '✋'
	EffectGlyph = '♥'
	HillGlyph   = '▒'
)
