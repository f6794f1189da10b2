// pkg/gunzip/result.go
package gunzip

// Result contains statistics about the gunzip run
type Result struct {
	// Number of selected input files
	FilesTotal int

	// Number of input files read to their end
	FilesProcessed int

	// Members decoded across all files
	Members int

	// Members written to a file (the rest were dumped to Stdout)
	MembersExtracted int

	// Paths of the files created for named members, in creation order
	Extracted []string

	// Compressed bytes read from the inputs
	CompressedSize uint64

	// Decompressed payload bytes
	DecompressedSize uint64
}

// Success returns true if every selected file was processed
func (r *Result) Success() bool {
	return r.FilesProcessed == r.FilesTotal
}

// GetFilesTotal returns total files (interface method)
func (r *Result) GetFilesTotal() int {
	return r.FilesTotal
}

// GetFilesProcessed returns processed files (interface method)
func (r *Result) GetFilesProcessed() int {
	return r.FilesProcessed
}

// GetMembers returns the number of decoded members (interface method)
func (r *Result) GetMembers() int {
	return r.Members
}

// GetErrors returns nil: the first error aborts the run and is returned directly (interface method)
func (r *Result) GetErrors() []error {
	return nil
}

// GetCompressedSize returns compressed size (interface method)
func (r *Result) GetCompressedSize() uint64 {
	return r.CompressedSize
}

// GetDecompressedSize returns decompressed size (interface method)
func (r *Result) GetDecompressedSize() uint64 {
	return r.DecompressedSize
}
