package inmemory

// Capability names the doubles record under. Assertion code filters the
// recorder log by these.
const (
	CapabilityFetcher    = "fetcher"
	CapabilityDownloader = "downloader"
	CapabilityMover      = "mover"
	CapabilityAttributes = "attributes"
)
