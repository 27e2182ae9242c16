// Package imagestore abstracts access to the image uploads referenced by
// item records.
//
// # Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: directory on local disk
//   - HTTPStore: absolute URLs
//   - minio.Store: MinIO / S3-compatible object storage
//   - s3.Store: AWS S3
//
// All implementations map a missing reference to ErrNotFound so the semantic
// scorer's fail-soft path treats it uniformly.
package imagestore
