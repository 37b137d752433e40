package ingest

type ingestState struct {
	allowDuplicates bool
	maxDepth        int
	sourceInErrors  bool
}

type IngestOption func(*ingestState)

// AllowDuplicateKeys makes the last occurrence of a repeated mapping key
// win instead of failing.
func AllowDuplicateKeys(v bool) IngestOption {
	return func(is *ingestState) { is.allowDuplicates = v }
}

// MaxDepth makes ingestion fail once sequences and mappings nest deeper
// than n.  Zero means no limit.
func MaxDepth(n int) IngestOption {
	return func(is *ingestState) { is.maxDepth = n }
}

// SourceInErrors includes the offending source lines in parse error
// messages.
func SourceInErrors(v bool) IngestOption {
	return func(is *ingestState) { is.sourceInErrors = v }
}
