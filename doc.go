// Package phonemescape looks up and compares IPA phonemes.
//
// A Library serves a catalog of vowels and pulmonic consonants, each placed on
// its category's chart plane, and answers queries about them: articulatory
// details, mouth-shape similarity, nearest neighbors, similarity matrices,
// clusters, feature filters and word analysis.
//
//	lib, err := phonemescape.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	score, err := lib.Similarity("p", "b")
//
// Open builds a library from a config.Config and persists the catalog in
// badger, sqlite or memory storage.
package phonemescape
