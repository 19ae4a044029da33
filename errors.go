package authclient

import "errors"

var (
	// ErrEngineNotReady is returned when an Engine is used before Build
	// wired its dependencies.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrBuilderReused is returned by Build when the Builder has already
	// produced an Engine.
	ErrBuilderReused = errors.New("builder already used")
	// ErrMissingBaseURL is returned by Build when no API base URL is
	// configured.
	ErrMissingBaseURL = errors.New("missing API base URL")
	// ErrRefreshInvalid is returned when the refresh endpoint answers
	// without a new access token.
	ErrRefreshInvalid = errors.New("refresh response missing access token")
)
