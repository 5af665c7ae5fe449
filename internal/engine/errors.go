package engine

import "errors"

// Sentinel errors returned at the engine boundary.
var (
	ErrUnknownAsset = errors.New("engine: unknown asset")
	ErrUnknownScene = errors.New("engine: unknown scene")
)
