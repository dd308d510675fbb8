// Package minio provides a blobstore.BlobStore backed by MinIO or any
// S3-compatible object storage, for serving catalog files from a shared
// bucket.
package minio
