// Package sqlite implements storage.CatalogRepository on SQLite through the
// pure-Go modernc.org/sqlite driver.
//
// Phonemes live in a single table whose columns follow the catalog export
// order (type, symbol, x, y, feature1, feature2, feature3, description). The
// rowid-like position column preserves catalog order.
package sqlite
