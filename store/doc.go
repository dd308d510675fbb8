// Package store defines the exact-match backing store for catalog
// records: a lookup keyed by (catalog identifier, resistance) returning
// the full encoded record.
//
// The nearest-value search only needs the sorted key array; the exact
// store supplies the record behind the chosen key. Because both are
// derived from the same catalog, a store miss after a successful
// nearest search is an integrity fault for the caller to surface, not a
// normal outcome.
//
// Implementations: MemoryStore (from built catalogs), BlobStore (lazy
// rebuild from binary catalog files) and DynamoStore (a shared remote
// table).
package store
