package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxFolderNameLength = 255

	// MaxFileNameLength is the maximum length for file display names.
	// Same as folder names for consistency.
	MaxFileNameLength = 255

	// MaxUploadBytes is the upload size ceiling (100 MiB).
	MaxUploadBytes = 100 << 20

	// AllowedUploadMime is the only content type accepted when PDF-only
	// validation is enabled.
	AllowedUploadMime = "application/pdf"

	// DefaultPageSize is the page size used when the caller does not
	// specify one. MinPageSize and MaxPageSize clamp caller-supplied
	// values so a single listing response stays bounded.
	DefaultPageSize = 50
	MinPageSize     = 10
	MaxPageSize     = 100

	// MaxSearchResults caps each result collection of a name search so a
	// pathological query cannot produce an unbounded response.
	MaxSearchResults = 200

	// DefaultDataroomName is the reserved name given to a lazily
	// provisioned root folder.
	DefaultDataroomName = "General Dataroom"
)
