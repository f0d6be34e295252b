package core

// Tick is a labelled axis position.
type Tick struct {
	Value float64
	Label string
}

// Plane describes a category's chart coordinate system. Vowel and consonant
// planes are unrelated; coordinates from different planes are never compared.
type Plane struct {
	Category Category
	Shape    string
	XLabel   string
	YLabel   string
	XMin     float64
	XMax     float64
	YMin     float64
	YMax     float64
	XTicks   []Tick
	YTicks   []Tick

	// MaxDistance is the extreme-corner diagonal used to normalize distances.
	MaxDistance float64
	// MismatchPenalty multiplies similarity when the binary feature differs.
	MismatchPenalty float64
}

// VowelPlane is the IPA vowel trapezoid.
var VowelPlane = Plane{
	Category: CategoryVowel,
	Shape:    "trapezoid",
	XLabel:   "Backness",
	YLabel:   "Height",
	XMin:     0,
	XMax:     2.2,
	YMin:     0,
	YMax:     3.2,
	XTicks: []Tick{
		{0, "Front"}, {1, "Central"}, {2, "Back"},
	},
	YTicks: []Tick{
		{0, "Close"}, {1, "Close-mid"}, {2, "Open-mid"}, {3, "Open"},
	},
	MaxDistance:     3.6,
	MismatchPenalty: 0.8,
}

// ConsonantPlane is the IPA pulmonic consonant grid.
var ConsonantPlane = Plane{
	Category: CategoryConsonant,
	Shape:    "grid",
	XLabel:   "Place of Articulation",
	YLabel:   "Manner of Articulation",
	XMin:     -0.5,
	XMax:     10.5,
	YMin:     -0.5,
	YMax:     7.5,
	XTicks: []Tick{
		{0, "Bilabial"}, {1, "Labiodental"}, {2, "Dental"}, {3, "Alveolar"},
		{4, "Postalveolar"}, {5, "Retroflex"}, {6, "Palatal"}, {7, "Velar"},
		{8, "Uvular"}, {9, "Pharyngeal"}, {10, "Glottal"},
	},
	YTicks: []Tick{
		{0, "Plosive"}, {1, "Nasal"}, {2, "Trill"}, {3, "Tap/Flap"},
		{4, "Fricative"}, {5, "Lat. Fricative"}, {6, "Approximant"}, {7, "Lat. Approximant"},
	},
	MaxDistance:     12.7,
	MismatchPenalty: 0.9,
}

// PlaneFor returns the chart plane of a category.
func PlaneFor(c Category) (Plane, bool) {
	switch c {
	case CategoryVowel:
		return VowelPlane, true
	case CategoryConsonant:
		return ConsonantPlane, true
	default:
		return Plane{}, false
	}
}

// Contains reports whether a coordinate lies inside the plane's bounds.
func (p Plane) Contains(c Coordinate) bool {
	return c.X >= p.XMin && c.X <= p.XMax && c.Y >= p.YMin && c.Y <= p.YMax
}
