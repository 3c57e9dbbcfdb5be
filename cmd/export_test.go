package cmd

// Generate exports generate for testing.
var Generate = generate //nolint:gochecknoglobals // test export
