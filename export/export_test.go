package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("/tmp/custom.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatForPath("/tmp/custom")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestNewDocument(t *testing.T) {
	d := NewDocument(catalog.Default())
	require.Len(t, d.Vowels, 28)
	require.Len(t, d.Consonants, 59)

	assert.Equal(t, Row{
		Symbol: "i", X: 0, Y: 0,
		Feature1: "close", Feature2: "front", Feature3: "unrounded",
		Description: "Close front unrounded vowel",
	}, d.Vowels[0])
	assert.Equal(t, "p", d.Consonants[0].Symbol)
	assert.Equal(t, "plosive", d.Consonants[0].Feature1)
	assert.Equal(t, "bilabial", d.Consonants[0].Feature2)
	assert.Equal(t, "voiceless", d.Consonants[0].Feature3)
}

func TestEncodeJSON(t *testing.T) {
	data, err := Encode(catalog.Default(), FormatJSON)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"ʃ"`)
	// Field order is symbol, x, y, features, description.
	first := text[strings.Index(text, "{\n      \"symbol\""):]
	assert.Less(t, strings.Index(first, `"symbol"`), strings.Index(first, `"x"`))
	assert.Less(t, strings.Index(first, `"y"`), strings.Index(first, `"feature1"`))
	assert.Less(t, strings.Index(first, `"feature3"`), strings.Index(first, `"description"`))

	var d Document
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, *NewDocument(catalog.Default()), d)
}

func TestEncodeCSV(t *testing.T) {
	data, err := Encode(catalog.Default(), FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 88)
	assert.Equal(t, "Type,Symbol,X,Y,Feature1,Feature2,Feature3,Description", lines[0])
	assert.Equal(t, "vowel,i,0,0,close,front,unrounded,Close front unrounded vowel", lines[1])
	assert.Equal(t, "consonant,p,0,0,plosive,bilabial,voiceless,Voiceless bilabial plosive", lines[29])
	assert.Equal(t, `vowel,ə,1,1.5,mid,central,unrounded,Mid central vowel (schwa)`, lines[16])
}

func TestEncodeYAML(t *testing.T) {
	data, err := Encode(catalog.Default(), FormatYAML)
	require.NoError(t, err)

	var d Document
	require.NoError(t, yaml.Unmarshal(data, &d))
	assert.Equal(t, *NewDocument(catalog.Default()), d)
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(catalog.Default(), Format("xml"))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestRoundTrip(t *testing.T) {
	source := catalog.Default()
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(source, format)
			require.NoError(t, err)

			c, err := Read(bytes.NewReader(data), format)
			require.NoError(t, err)
			assert.Equal(t, source.Fingerprint(), c.Fingerprint())
			assert.Equal(t, source.Symbols(), c.Symbols())
		})
	}
}

func TestReadCSV_Custom(t *testing.T) {
	input := strings.Join([]string{
		"consonant,p,0,0,plosive,bilabial,voiceless,p",
		"vowel,a,0.6,3,open,front,unrounded,a",
		"consonant,b,0.1,0,plosive,bilabial,voiced,b",
	}, "\n")

	c, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "p", "b"}, c.Symbols())
	assert.Equal(t, []string{"a"}, c.Vowels())

	// Writing and reading back keeps the fingerprint.
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, c))
	again, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Fingerprint(), again.Fingerprint())
	assert.Equal(t, c.Symbols(), again.Symbols())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "Type,Symbol,X,Y,Feature1,Feature2,Feature3,Description\n"},
		{"short row", "vowel,a,0.6,3,open,front\n"},
		{"bad type", "glide,w,0,0,a,b,c,d\n"},
		{"bad x", "vowel,a,left,3,open,front,unrounded,a\n"},
		{"bad feature", "vowel,a,0.6,3,wide,front,unrounded,a\n"},
		{"inconsistent coordinate", "vowel,a,2,0,open,front,unrounded,a\n"},
		{"duplicate", "vowel,a,0.6,3,open,front,unrounded,a\nvowel,a,0.6,3,open,front,unrounded,a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}
}

func TestRead_RejectsUnknownFields(t *testing.T) {
	_, err := Read(strings.NewReader(`{"vowels": [], "tones": []}`), FormatJSON)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = Read(strings.NewReader("vowels: []\ntones: []\n"), FormatYAML)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
