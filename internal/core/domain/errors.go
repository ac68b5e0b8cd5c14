package domain

import "go.trai.ch/zerr"

var (
	// ErrFetchFailed is returned when a manifest or month payload cannot be retrieved.
	ErrFetchFailed = zerr.New("failed to fetch document")

	// ErrFetchStatus is returned when the remote answers with a non-success status.
	ErrFetchStatus = zerr.New("unexpected response status")

	// ErrDocumentRead is returned when a document body cannot be read.
	ErrDocumentRead = zerr.New("failed to read document")

	// ErrDocumentTooLarge is returned when a document exceeds the fetch size limit.
	ErrDocumentTooLarge = zerr.New("document exceeds size limit")

	// ErrInvalidDocument is returned when a fetched document is not valid JSON.
	ErrInvalidDocument = zerr.New("document is not valid JSON")

	// ErrReferenceOutsideRoot is returned when a relative reference climbs above the site root.
	ErrReferenceOutsideRoot = zerr.New("document reference escapes the site root")

	// ErrEmptyReference is returned when a fetch is requested without a path.
	ErrEmptyReference = zerr.New("empty document reference")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to apply environment overrides")

	// ErrStorageOpenFailed is returned when a persistent cache tier cannot be opened.
	ErrStorageOpenFailed = zerr.New("failed to open cache storage")

	// ErrMonthNotFound is returned when a month is not listed in the manifest.
	ErrMonthNotFound = zerr.New("month not found in manifest")

	// ErrMissingMonth is returned when a command requires a month key and none was given.
	ErrMissingMonth = zerr.New("month is required")

	// ErrInvalidSortOrder is returned when an unknown sort order is requested.
	ErrInvalidSortOrder = zerr.New("invalid sort order, expected published_desc, published_asc, title_asc or confidence_desc")

	// ErrInvalidTagFilter is returned when a tag filter is not of the form category=value.
	ErrInvalidTagFilter = zerr.New("invalid tag filter, expected category=value")

	// ErrUnknownTagCategory is returned when a tag filter names an unknown category.
	ErrUnknownTagCategory = zerr.New("unknown tag category")

	// ErrInvalidView is returned when an unknown view name is given.
	ErrInvalidView = zerr.New("invalid view, expected home, month or explore")
)
