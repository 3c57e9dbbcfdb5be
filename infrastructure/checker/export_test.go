package checker

// ParseGraph exports parseGraph for testing.
var ParseGraph = parseGraph //nolint:gochecknoglobals // test export
