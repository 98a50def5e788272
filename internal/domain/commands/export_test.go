package commands

// ResolveAPIKeyFromEnv exports resolveAPIKeyFromEnv for testing.
var ResolveAPIKeyFromEnv = resolveAPIKeyFromEnv //nolint:gochecknoglobals // test export

// APIKeyEnvHint exports apiKeyEnvHint for testing.
var APIKeyEnvHint = apiKeyEnvHint //nolint:gochecknoglobals // test export
