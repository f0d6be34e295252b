// Package export converts a catalog to and from its interchange forms: a
// plain Document mapping, JSON, CSV and YAML.
//
// Every form keeps the record field order symbol, x, y, feature1, feature2,
// feature3, description. CSV adds a leading type column so vowels and
// consonants can share one table.
package export
