package domain

// Attribute keys written onto archived files via the FileAttributes
// capability. Values are Unix timestamps (int64 seconds).
const (
	// AttrCreationDate is the creation timestamp of an archived episode,
	// set from the episode's published time.
	AttrCreationDate = "creationDate"
)
