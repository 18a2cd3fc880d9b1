// Package id generates the run ids that tag the log records of one scenario run.
package id

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	size     = 12
)

// New generate a lowercase alphanumeric run id.
func New() string { return gonanoid.MustGenerate(alphabet, size) }
