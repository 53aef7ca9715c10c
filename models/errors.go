package models

import "errors"

var (
	ErrMarketNotFound = errors.New("market not found")

	ErrInvalidMarketID      = errors.New("invalid market ID")
	ErrInvalidQuestion      = errors.New("invalid market question")
	ErrInvalidCastHash      = errors.New("invalid cast hash")
	ErrInvalidCloseTime     = errors.New("invalid close time")
	ErrInvalidConfidence    = errors.New("confidence must be between 0 and 1")
	ErrPoolImbalance        = errors.New("pool amount does not equal yes shares plus no shares")
	ErrDuplicateParticipant = errors.New("participant listed more than once")

	ErrMarketAlreadyResolved = errors.New("market is already resolved")

	// ErrMarketIDExhausted signals that the identifier issuer collided on
	// every attempt; market creation must abort without persisting anything.
	ErrMarketIDExhausted = errors.New("market ID generation exhausted all attempts")
	ErrDuplicateMarketID = errors.New("market ID already exists")

	ErrInvalidTriggerHandle = errors.New("trigger handle is not configured")
	ErrInvalidDefaultStake  = errors.New("default stake amount is not configured")
	ErrInvalidAppURL        = errors.New("public app URL is not configured")
	ErrInvalidIDAttempts    = errors.New("market ID attempts must be at least 1")
	ErrInvalidFallbackScore = errors.New("fallback confidence must be between 0 and 1")

	ErrLLMKeyNotConfigured    = errors.New("language model API key is not configured")
	ErrSignerNotConfigured    = errors.New("neynar signer UUID is not configured")
	ErrNeynarKeyNotConfigured = errors.New("neynar API key is not configured")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials are not configured")
)
