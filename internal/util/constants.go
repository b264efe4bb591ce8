package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeJSON = "application/json"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 12
	MaxPageSize     = 100
)
