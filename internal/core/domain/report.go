package domain

// GeneratedUnit describes one unit file written by a generation run.
type GeneratedUnit struct {
	Name   string
	Target string
	// Links are the symlink paths, relative to the destination, that were created.
	Links  []string
	Digest string
}

// Report summarizes a completed generation run.
type Report struct {
	Units []GeneratedUnit
	// LinkFailures counts requirement-group directories and symlinks that could not be created.
	LinkFailures int
	// Digest covers every unit file in generation order.
	Digest string
}
