package application

// ResolveOrigin exports resolveOrigin for testing.
var ResolveOrigin = resolveOrigin //nolint:gochecknoglobals // test export
