package combine

// FileRecord is one admitted file, read and formatted.
type FileRecord struct {
	Path    string // Root-relative path with forward slashes.
	Content string // Decoded, trimmed text as read from disk; empty when the read failed.
	Block   string // Banner-wrapped text written to the output.
	Size    int    // UTF-8 byte length of Block.
	Err     error  // Read failure; Block then carries the inline error message.
}

// OutputPart is one output document: the records assigned to it and their total size.
type OutputPart struct {
	Index   int           // 1-based part number.
	Records []*FileRecord // In assignment order.
	Size    int           // Sum of the records' sizes.
}

// Stats counts what happened during a run.
type Stats struct {
	Processed         int // Admitted files that were read.
	Skipped           int // Files rejected by the classifier.
	ReadErrors        int // Admitted files that could not be read.
	PrunedDirs        int // Directories pruned by path or name.
	PrunedEnvDirs     int // Virtual environment roots pruned.
	PrunedNodeModules int // node_modules directories pruned.
	Loops             int // Directories skipped as symlink loops or duplicates.
	ListingErrors     int // Directories that could not be listed.
}

// Report is the outcome of Run.
type Report struct {
	Root     string        // Absolute scan root.
	Parts    []*OutputPart // Exactly Arguments.Parts entries.
	Outputs  []string      // Paths of the part files written successfully.
	Stats    Stats
	WriteErr error // Aggregate of per-part write failures.
}
