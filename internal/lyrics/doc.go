package lyrics

// Package lyrics implements the lyrics lookup pipeline: a provider
// abstraction over external lyrics services, a Genius-backed provider, and a
// single-flight fetch service that runs lookups off the UI thread and
// guarantees a superseded request never presents its result.
