// Package catalog holds the immutable phoneme table.
//
// A Catalog is built once from a list of validated phonemes and never
// mutated afterwards, so it can be shared freely between goroutines. The
// builtin IPA 2020 table is available through Default; tests and callers with
// their own inventories construct smaller catalogs with New.
//
// Vowels and consonants live on separate chart planes. Filtering with
// Constraints only applies the constraints relevant to a phoneme's category.
package catalog
