package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// IDMUS is the MUS serializer for ID.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// CategoryMUS is the MUS serializer for Category.
var CategoryMUS = categoryMUS{}

type categoryMUS struct{}

func (s categoryMUS) Marshal(v Category, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s categoryMUS) Unmarshal(bs []byte) (v Category, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Category(tmp)
	return
}

func (s categoryMUS) Size(v Category) (size int) {
	return varint.Int.Size(int(v))
}

// CoordinateMUS is the MUS serializer for Coordinate.
var CoordinateMUS = coordinateMUS{}

type coordinateMUS struct{}

func (s coordinateMUS) Marshal(v Coordinate, bs []byte) (n int) {
	n = raw.Float64.Marshal(v.X, bs)
	return n + raw.Float64.Marshal(v.Y, bs[n:])
}

func (s coordinateMUS) Unmarshal(bs []byte) (v Coordinate, n int, err error) {
	v.X, n, err = raw.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Y, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s coordinateMUS) Size(v Coordinate) (size int) {
	return raw.Float64.Size(v.X) + raw.Float64.Size(v.Y)
}

// PhonemeMUS is the MUS serializer for Phoneme.
var PhonemeMUS = phonemeMUS{}

type phonemeMUS struct{}

// tail lists the string fields encoded after Coordinate, in field order.
func (s phonemeMUS) tail(v *Phoneme) [7]*string {
	return [7]*string{
		(*string)(&v.Height),
		(*string)(&v.Backness),
		(*string)(&v.Roundedness),
		(*string)(&v.Manner),
		(*string)(&v.Place),
		(*string)(&v.Voicing),
		&v.Description,
	}
}

func (s phonemeMUS) Marshal(v Phoneme, bs []byte) (n int) {
	n = ord.String.Marshal(v.Symbol, bs)
	n += CategoryMUS.Marshal(v.Category, bs[n:])
	n += CoordinateMUS.Marshal(v.Coordinate, bs[n:])
	for _, f := range s.tail(&v) {
		n += ord.String.Marshal(*f, bs[n:])
	}
	return
}

func (s phonemeMUS) Unmarshal(bs []byte) (v Phoneme, n int, err error) {
	v.Symbol, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Category, n1, err = CategoryMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Coordinate, n1, err = CoordinateMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for _, f := range s.tail(&v) {
		*f, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func (s phonemeMUS) Size(v Phoneme) (size int) {
	size = ord.String.Size(v.Symbol) + CategoryMUS.Size(v.Category) + CoordinateMUS.Size(v.Coordinate)
	for _, f := range s.tail(&v) {
		size += ord.String.Size(*f)
	}
	return
}
