package storage

import "mime/multipart"

// Store persists uploaded files and returns the relative path they were
// stored under. The path is what gets recorded on the owning record and
// served back under the public /uploads prefix.
type Store interface {
	Save(fh *multipart.FileHeader) (string, error)
}
