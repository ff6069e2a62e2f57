package api

import "github.com/cockroachdb/errors"

// ErrorInvalidArgument operation cannot succeed because key, bound or
// value argument is unset.
var ErrorInvalidArgument = errors.New("invalidArgument")

// ErrorEmptyCollection operation cannot succeed because it requires at
// least one entry in the index.
var ErrorEmptyCollection = errors.New("emptyCollection")

// ErrorIndexOutOfRange operation cannot succeed because specified rank
// is not within [0, Count()).
var ErrorIndexOutOfRange = errors.New("indexOutOfRange")
