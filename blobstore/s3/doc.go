// Package s3 provides an S3-backed blobstore.BlobStore for catalog
// files. Whole-object PUTs keep publishes atomic; reads use ranged GETs
// so the query path can fetch individual records without downloading a
// whole catalog.
package s3
