package domain

import "errors"

var (
	// ErrDecode marks malformed or unsupported image input.
	ErrDecode = errors.New("image decode failed")
	// ErrShapeMismatch marks a disagreement between the model artifact and
	// the preprocessing contract (tensor shape or class count).
	ErrShapeMismatch = errors.New("tensor shape mismatch")
	// ErrInference marks a failed model invocation.
	ErrInference = errors.New("inference failed")
	// ErrLoad marks a missing or corrupt model artifact at startup.
	ErrLoad = errors.New("model load failed")
)
