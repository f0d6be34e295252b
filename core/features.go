package core

// Feature names accepted by constraint maps.
const (
	FeatureCategory    = "type"
	FeatureHeight      = "height"
	FeatureBackness    = "backness"
	FeatureRoundedness = "roundedness"
	FeatureManner      = "manner"
	FeaturePlace       = "place"
	FeatureVoicing     = "voicing"
)

// Height is the vowel tongue height, close to open.
type Height string

const (
	HeightClose     Height = "close"
	HeightNearClose Height = "near-close"
	HeightCloseMid  Height = "close-mid"
	HeightMid       Height = "mid"
	HeightOpenMid   Height = "open-mid"
	HeightNearOpen  Height = "near-open"
	HeightOpen      Height = "open"
)

var heightOrdinals = map[Height]float64{
	HeightClose:     0.0,
	HeightNearClose: 0.5,
	HeightCloseMid:  1.0,
	HeightMid:       1.5,
	HeightOpenMid:   2.0,
	HeightNearOpen:  2.5,
	HeightOpen:      3.0,
}

// Ordinal returns the y position of the height row on the vowel plane.
func (h Height) Ordinal() (float64, bool) {
	v, ok := heightOrdinals[h]
	return v, ok
}

// Backness is the vowel tongue position, front to back.
type Backness string

const (
	BacknessFront     Backness = "front"
	BacknessNearFront Backness = "near-front"
	BacknessCentral   Backness = "central"
	BacknessNearBack  Backness = "near-back"
	BacknessBack      Backness = "back"
)

var backnessOrdinals = map[Backness]float64{
	BacknessFront:     0.0,
	BacknessNearFront: 0.3,
	BacknessCentral:   1.0,
	BacknessNearBack:  1.7,
	BacknessBack:      2.0,
}

// Ordinal returns the nominal x position of the backness column.
func (b Backness) Ordinal() (float64, bool) {
	v, ok := backnessOrdinals[b]
	return v, ok
}

// Roundedness is the binary lip-rounding feature of vowels.
type Roundedness string

const (
	Unrounded Roundedness = "unrounded"
	Rounded   Roundedness = "rounded"
)

// Valid reports whether r is a known value.
func (r Roundedness) Valid() bool { return r == Unrounded || r == Rounded }

// Bit encodes rounded as 1 and unrounded as 0.
func (r Roundedness) Bit() float64 {
	if r == Rounded {
		return 1
	}
	return 0
}

// Manner is the consonant manner of articulation.
type Manner string

const (
	MannerPlosive            Manner = "plosive"
	MannerNasal              Manner = "nasal"
	MannerTrill              Manner = "trill"
	MannerTap                Manner = "tap"
	MannerFricative          Manner = "fricative"
	MannerLateralFricative   Manner = "lateral-fricative"
	MannerApproximant        Manner = "approximant"
	MannerLateralApproximant Manner = "lateral-approximant"
)

var mannerOrdinals = map[Manner]float64{
	MannerPlosive:            0,
	MannerNasal:              1,
	MannerTrill:              2,
	MannerTap:                3,
	MannerFricative:          4,
	MannerLateralFricative:   5,
	MannerApproximant:        6,
	MannerLateralApproximant: 7,
}

// Ordinal returns the y row of the manner on the consonant grid.
func (m Manner) Ordinal() (float64, bool) {
	v, ok := mannerOrdinals[m]
	return v, ok
}

// Place is the consonant place of articulation.
type Place string

const (
	PlaceBilabial     Place = "bilabial"
	PlaceLabiodental  Place = "labiodental"
	PlaceDental       Place = "dental"
	PlaceAlveolar     Place = "alveolar"
	PlacePostalveolar Place = "postalveolar"
	PlaceRetroflex    Place = "retroflex"
	PlacePalatal      Place = "palatal"
	PlaceVelar        Place = "velar"
	PlaceUvular       Place = "uvular"
	PlacePharyngeal   Place = "pharyngeal"
	PlaceGlottal      Place = "glottal"
)

var placeOrdinals = map[Place]float64{
	PlaceBilabial:     0,
	PlaceLabiodental:  1,
	PlaceDental:       2,
	PlaceAlveolar:     3,
	PlacePostalveolar: 4,
	PlaceRetroflex:    5,
	PlacePalatal:      6,
	PlaceVelar:        7,
	PlaceUvular:       8,
	PlacePharyngeal:   9,
	PlaceGlottal:      10,
}

// Ordinal returns the x column of the place on the consonant grid.
func (p Place) Ordinal() (float64, bool) {
	v, ok := placeOrdinals[p]
	return v, ok
}

// Voicing is the binary vocal-fold feature of consonants.
type Voicing string

const (
	Voiceless Voicing = "voiceless"
	Voiced    Voicing = "voiced"
)

// Valid reports whether v is a known value.
func (v Voicing) Valid() bool { return v == Voiceless || v == Voiced }

// Bit encodes voiced as 1 and voiceless as 0.
func (v Voicing) Bit() float64 {
	if v == Voiced {
		return 1
	}
	return 0
}
