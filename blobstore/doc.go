// Package blobstore abstracts where catalog files live.
//
// A catalog is published as immutable blobs (binary records, sorted-key
// files), so the store contract is deliberately small: whole-blob atomic
// Put, random-access read via Open, List and Delete. Implementations:
//
//   - LocalStore: filesystem, memory-mapped reads, temp-file+rename writes
//   - MemoryStore: in-process map, mainly for tests
//   - s3.Store / minio.Store: remote object storage (subpackages)
package blobstore
