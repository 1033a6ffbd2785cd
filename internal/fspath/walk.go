package fspath

// Walk visits every file under p exactly once, depth first, with each
// directory's own files visited before any of its subdirectories are
// descended into. The traversal is driven by an explicit transition
// queue and a single mutable cursor rather than call-stack recursion, so
// stack usage is bounded regardless of tree depth.
//
// Unreadable directories enumerate as empty and are skipped silently.
// There is no cycle detection: symbolic links forming a cycle may cause
// non-termination. Walk offers no cancellation; a caller needing to
// abort must signal out-of-band from the callback (e.g. by panicking
// across the traversal and recovering).
func (p DirectoryPath) Walk(visit func(FilePath)) {
	// An empty transition means "step back up one level".
	cursor := p
	var transitions []string

	emitFiles := func() {
		for _, name := range cursor.ListFiles() {
			visit(cursor.Select(name))
		}
	}
	queueSubdirs := func() {
		transitions = append(cursor.ListDirectories(), transitions...)
	}

	emitFiles()
	queueSubdirs()

	for len(transitions) > 0 {
		next := transitions[0]
		transitions = transitions[1:]

		if next == "" {
			cursor.Exit()
			continue
		}

		cursor.Enter(next)
		transitions = append([]string{""}, transitions...)
		queueSubdirs()
		emitFiles()
	}
}
