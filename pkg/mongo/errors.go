package mongo

import "errors"

var (
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrInvalidTarget          = errors.New("lookup target must be \"collection.field\"")
	ErrLookupFailed           = errors.New("mongo field lookup failed")
)
