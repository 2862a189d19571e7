// Package gate implements a low-assurance access check: a single shared
// secret compared literally. It is a velvet rope, not authentication — there
// is no lockout, no rate limiting, and no expiry.
package gate

import "strings"

type Gate struct {
	secret   string
	foldCase bool
}

// New returns a gate that matches the secret exactly, case-sensitively.
func New(secret string) *Gate {
	return &Gate{secret: secret}
}

// NewFoldingCase returns a gate that matches the secret ignoring case.
func NewFoldingCase(secret string) *Gate {
	return &Gate{secret: secret, foldCase: true}
}

// Unlock reports whether pin matches the shared secret.
func (g *Gate) Unlock(pin string) bool {
	if g.foldCase {
		return strings.EqualFold(pin, g.secret)
	}
	return pin == g.secret
}
