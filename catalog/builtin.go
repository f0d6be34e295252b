package catalog

import "github.com/poiesic/phonemescape/core"

func vowel(symbol string, x, y float64, h core.Height, b core.Backness, r core.Roundedness, desc string) core.Phoneme {
	return core.Phoneme{
		Symbol:      symbol,
		Category:    core.CategoryVowel,
		Coordinate:  core.Coordinate{X: x, Y: y},
		Height:      h,
		Backness:    b,
		Roundedness: r,
		Description: desc,
	}
}

func consonant(symbol string, x, y float64, m core.Manner, p core.Place, v core.Voicing, desc string) core.Phoneme {
	return core.Phoneme{
		Symbol:      symbol,
		Category:    core.CategoryConsonant,
		Coordinate:  core.Coordinate{X: x, Y: y},
		Manner:      m,
		Place:       p,
		Voicing:     v,
		Description: desc,
	}
}

// Vowel trapezoid, IPA 2020. X runs front (0) to back (2), Y close (0) to
// open (3); front vowels drift right as height decreases. Within a cell the
// unrounded vowel sits left of its rounded partner.
var builtinVowels = []core.Phoneme{
	vowel("i", 0.0, 0.0, core.HeightClose, core.BacknessFront, core.Unrounded, "Close front unrounded vowel"),
	vowel("y", 0.1, 0.0, core.HeightClose, core.BacknessFront, core.Rounded, "Close front rounded vowel"),
	vowel("ɨ", 1.0, 0.0, core.HeightClose, core.BacknessCentral, core.Unrounded, "Close central unrounded vowel"),
	vowel("ʉ", 1.1, 0.0, core.HeightClose, core.BacknessCentral, core.Rounded, "Close central rounded vowel"),
	vowel("ɯ", 2.0, 0.0, core.HeightClose, core.BacknessBack, core.Unrounded, "Close back unrounded vowel"),
	vowel("u", 2.1, 0.0, core.HeightClose, core.BacknessBack, core.Rounded, "Close back rounded vowel"),

	vowel("ɪ", 0.3, 0.5, core.HeightNearClose, core.BacknessNearFront, core.Unrounded, "Near-close near-front unrounded vowel"),
	vowel("ʏ", 0.4, 0.5, core.HeightNearClose, core.BacknessNearFront, core.Rounded, "Near-close near-front rounded vowel"),
	vowel("ʊ", 1.8, 0.5, core.HeightNearClose, core.BacknessNearBack, core.Rounded, "Near-close near-back rounded vowel"),

	vowel("e", 0.2, 1.0, core.HeightCloseMid, core.BacknessFront, core.Unrounded, "Close-mid front unrounded vowel"),
	vowel("ø", 0.3, 1.0, core.HeightCloseMid, core.BacknessFront, core.Rounded, "Close-mid front rounded vowel"),
	vowel("ɘ", 1.0, 1.0, core.HeightCloseMid, core.BacknessCentral, core.Unrounded, "Close-mid central unrounded vowel"),
	vowel("ɵ", 1.1, 1.0, core.HeightCloseMid, core.BacknessCentral, core.Rounded, "Close-mid central rounded vowel"),
	vowel("ɤ", 2.0, 1.0, core.HeightCloseMid, core.BacknessBack, core.Unrounded, "Close-mid back unrounded vowel"),
	vowel("o", 2.1, 1.0, core.HeightCloseMid, core.BacknessBack, core.Rounded, "Close-mid back rounded vowel"),

	vowel("ə", 1.0, 1.5, core.HeightMid, core.BacknessCentral, core.Unrounded, "Mid central vowel (schwa)"),

	vowel("ɛ", 0.4, 2.0, core.HeightOpenMid, core.BacknessFront, core.Unrounded, "Open-mid front unrounded vowel"),
	vowel("œ", 0.5, 2.0, core.HeightOpenMid, core.BacknessFront, core.Rounded, "Open-mid front rounded vowel"),
	vowel("ɜ", 1.0, 2.0, core.HeightOpenMid, core.BacknessCentral, core.Unrounded, "Open-mid central unrounded vowel"),
	vowel("ɞ", 1.1, 2.0, core.HeightOpenMid, core.BacknessCentral, core.Rounded, "Open-mid central rounded vowel"),
	vowel("ʌ", 1.8, 2.0, core.HeightOpenMid, core.BacknessBack, core.Unrounded, "Open-mid back unrounded vowel"),
	vowel("ɔ", 2.1, 2.0, core.HeightOpenMid, core.BacknessBack, core.Rounded, "Open-mid back rounded vowel"),

	vowel("æ", 0.5, 2.5, core.HeightNearOpen, core.BacknessFront, core.Unrounded, "Near-open front unrounded vowel"),
	vowel("ɐ", 1.2, 2.5, core.HeightNearOpen, core.BacknessCentral, core.Unrounded, "Near-open central vowel"),

	vowel("a", 0.6, 3.0, core.HeightOpen, core.BacknessFront, core.Unrounded, "Open front unrounded vowel"),
	vowel("ɶ", 0.7, 3.0, core.HeightOpen, core.BacknessFront, core.Rounded, "Open front rounded vowel"),
	vowel("ɑ", 2.0, 3.0, core.HeightOpen, core.BacknessBack, core.Unrounded, "Open back unrounded vowel"),
	vowel("ɒ", 2.1, 3.0, core.HeightOpen, core.BacknessBack, core.Rounded, "Open back rounded vowel"),
}

// Pulmonic consonant grid, IPA 2020. X is place (bilabial 0 .. glottal 10),
// Y is manner (plosive 0 .. lateral approximant 7). Voiced partners sit 0.1
// right of the voiceless symbol. Shaded cells are simply absent.
var builtinConsonants = []core.Phoneme{
	consonant("p", 0, 0, core.MannerPlosive, core.PlaceBilabial, core.Voiceless, "Voiceless bilabial plosive"),
	consonant("b", 0.1, 0, core.MannerPlosive, core.PlaceBilabial, core.Voiced, "Voiced bilabial plosive"),
	consonant("t", 3, 0, core.MannerPlosive, core.PlaceAlveolar, core.Voiceless, "Voiceless alveolar plosive"),
	consonant("d", 3.1, 0, core.MannerPlosive, core.PlaceAlveolar, core.Voiced, "Voiced alveolar plosive"),
	consonant("ʈ", 5, 0, core.MannerPlosive, core.PlaceRetroflex, core.Voiceless, "Voiceless retroflex plosive"),
	consonant("ɖ", 5.1, 0, core.MannerPlosive, core.PlaceRetroflex, core.Voiced, "Voiced retroflex plosive"),
	consonant("c", 6, 0, core.MannerPlosive, core.PlacePalatal, core.Voiceless, "Voiceless palatal plosive"),
	consonant("ɟ", 6.1, 0, core.MannerPlosive, core.PlacePalatal, core.Voiced, "Voiced palatal plosive"),
	consonant("k", 7, 0, core.MannerPlosive, core.PlaceVelar, core.Voiceless, "Voiceless velar plosive"),
	consonant("g", 7.1, 0, core.MannerPlosive, core.PlaceVelar, core.Voiced, "Voiced velar plosive"),
	consonant("q", 8, 0, core.MannerPlosive, core.PlaceUvular, core.Voiceless, "Voiceless uvular plosive"),
	consonant("ɢ", 8.1, 0, core.MannerPlosive, core.PlaceUvular, core.Voiced, "Voiced uvular plosive"),
	consonant("ʔ", 10, 0, core.MannerPlosive, core.PlaceGlottal, core.Voiceless, "Glottal stop"),

	consonant("m", 0, 1, core.MannerNasal, core.PlaceBilabial, core.Voiced, "Voiced bilabial nasal"),
	consonant("ɱ", 1, 1, core.MannerNasal, core.PlaceLabiodental, core.Voiced, "Voiced labiodental nasal"),
	consonant("n", 3, 1, core.MannerNasal, core.PlaceAlveolar, core.Voiced, "Voiced alveolar nasal"),
	consonant("ɳ", 5, 1, core.MannerNasal, core.PlaceRetroflex, core.Voiced, "Voiced retroflex nasal"),
	consonant("ɲ", 6, 1, core.MannerNasal, core.PlacePalatal, core.Voiced, "Voiced palatal nasal"),
	consonant("ŋ", 7, 1, core.MannerNasal, core.PlaceVelar, core.Voiced, "Voiced velar nasal"),
	consonant("ɴ", 8, 1, core.MannerNasal, core.PlaceUvular, core.Voiced, "Voiced uvular nasal"),

	consonant("ʙ", 0, 2, core.MannerTrill, core.PlaceBilabial, core.Voiced, "Voiced bilabial trill"),
	consonant("r", 3, 2, core.MannerTrill, core.PlaceAlveolar, core.Voiced, "Voiced alveolar trill"),
	consonant("ʀ", 8, 2, core.MannerTrill, core.PlaceUvular, core.Voiced, "Voiced uvular trill"),

	consonant("ⱱ", 1, 3, core.MannerTap, core.PlaceLabiodental, core.Voiced, "Voiced labiodental flap"),
	consonant("ɾ", 3, 3, core.MannerTap, core.PlaceAlveolar, core.Voiced, "Voiced alveolar tap"),
	consonant("ɽ", 5, 3, core.MannerTap, core.PlaceRetroflex, core.Voiced, "Voiced retroflex flap"),

	consonant("ɸ", 0, 4, core.MannerFricative, core.PlaceBilabial, core.Voiceless, "Voiceless bilabial fricative"),
	consonant("β", 0.1, 4, core.MannerFricative, core.PlaceBilabial, core.Voiced, "Voiced bilabial fricative"),
	consonant("f", 1, 4, core.MannerFricative, core.PlaceLabiodental, core.Voiceless, "Voiceless labiodental fricative"),
	consonant("v", 1.1, 4, core.MannerFricative, core.PlaceLabiodental, core.Voiced, "Voiced labiodental fricative"),
	consonant("θ", 2, 4, core.MannerFricative, core.PlaceDental, core.Voiceless, "Voiceless dental fricative"),
	consonant("ð", 2.1, 4, core.MannerFricative, core.PlaceDental, core.Voiced, "Voiced dental fricative"),
	consonant("s", 3, 4, core.MannerFricative, core.PlaceAlveolar, core.Voiceless, "Voiceless alveolar fricative"),
	consonant("z", 3.1, 4, core.MannerFricative, core.PlaceAlveolar, core.Voiced, "Voiced alveolar fricative"),
	consonant("ʃ", 4, 4, core.MannerFricative, core.PlacePostalveolar, core.Voiceless, "Voiceless postalveolar fricative"),
	consonant("ʒ", 4.1, 4, core.MannerFricative, core.PlacePostalveolar, core.Voiced, "Voiced postalveolar fricative"),
	consonant("ʂ", 5, 4, core.MannerFricative, core.PlaceRetroflex, core.Voiceless, "Voiceless retroflex fricative"),
	consonant("ʐ", 5.1, 4, core.MannerFricative, core.PlaceRetroflex, core.Voiced, "Voiced retroflex fricative"),
	consonant("ç", 6, 4, core.MannerFricative, core.PlacePalatal, core.Voiceless, "Voiceless palatal fricative"),
	consonant("ʝ", 6.1, 4, core.MannerFricative, core.PlacePalatal, core.Voiced, "Voiced palatal fricative"),
	consonant("x", 7, 4, core.MannerFricative, core.PlaceVelar, core.Voiceless, "Voiceless velar fricative"),
	consonant("ɣ", 7.1, 4, core.MannerFricative, core.PlaceVelar, core.Voiced, "Voiced velar fricative"),
	consonant("χ", 8, 4, core.MannerFricative, core.PlaceUvular, core.Voiceless, "Voiceless uvular fricative"),
	consonant("ʁ", 8.1, 4, core.MannerFricative, core.PlaceUvular, core.Voiced, "Voiced uvular fricative"),
	consonant("ħ", 9, 4, core.MannerFricative, core.PlacePharyngeal, core.Voiceless, "Voiceless pharyngeal fricative"),
	consonant("ʕ", 9.1, 4, core.MannerFricative, core.PlacePharyngeal, core.Voiced, "Voiced pharyngeal fricative"),
	consonant("h", 10, 4, core.MannerFricative, core.PlaceGlottal, core.Voiceless, "Voiceless glottal fricative"),
	consonant("ɦ", 10.1, 4, core.MannerFricative, core.PlaceGlottal, core.Voiced, "Voiced glottal fricative"),

	consonant("ɬ", 3, 5, core.MannerLateralFricative, core.PlaceAlveolar, core.Voiceless, "Voiceless alveolar lateral fricative"),
	consonant("ɮ", 3.1, 5, core.MannerLateralFricative, core.PlaceAlveolar, core.Voiced, "Voiced alveolar lateral fricative"),

	consonant("ʋ", 1, 6, core.MannerApproximant, core.PlaceLabiodental, core.Voiced, "Voiced labiodental approximant"),
	consonant("ɹ", 3, 6, core.MannerApproximant, core.PlaceAlveolar, core.Voiced, "Voiced alveolar approximant"),
	consonant("ɻ", 5, 6, core.MannerApproximant, core.PlaceRetroflex, core.Voiced, "Voiced retroflex approximant"),
	consonant("j", 6, 6, core.MannerApproximant, core.PlacePalatal, core.Voiced, "Voiced palatal approximant"),
	consonant("ɰ", 7, 6, core.MannerApproximant, core.PlaceVelar, core.Voiced, "Voiced velar approximant"),

	consonant("l", 3, 7, core.MannerLateralApproximant, core.PlaceAlveolar, core.Voiced, "Voiced alveolar lateral approximant"),
	consonant("ɭ", 5, 7, core.MannerLateralApproximant, core.PlaceRetroflex, core.Voiced, "Voiced retroflex lateral approximant"),
	consonant("ʎ", 6, 7, core.MannerLateralApproximant, core.PlacePalatal, core.Voiced, "Voiced palatal lateral approximant"),
	consonant("ʟ", 7, 7, core.MannerLateralApproximant, core.PlaceVelar, core.Voiced, "Voiced velar lateral approximant"),
}
