package fixture

// File is a named byte sequence destined for the output directory.
type File struct {
	// Name is the file name, unique within a run.
	Name string

	// Data is the full content. Once a builder returns a File the
	// content is treated as immutable.
	Data []byte
}

// Pair is two related files exercising one difference pattern in the
// downstream diff tool: an original and a modified version.
type Pair struct {
	// Key identifies the pair on the command line (e.g. "firmware").
	Key string

	// Desc is a one-line description of the difference pattern.
	Desc string

	// A is the original/before file, B the modified/after file.
	A File
	B File
}

// Files returns the pair's files in write order.
func (p Pair) Files() []File {
	return []File{p.A, p.B}
}
