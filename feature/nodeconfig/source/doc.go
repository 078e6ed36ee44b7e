// Package source provides the places node override files are read from.
//
//   - Dir: a local directory, by default "nodes" next to the server executable.
//     Reads go through os.Root, so file names cannot reach outside the directory.
//   - Bucket: objects under a prefix of an S3/MinIO bucket (core/storage).
//
// Both report a missing file with an error wrapping ErrNotFound.
package source
