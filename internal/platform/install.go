// Package platform models the hosting platform's surfaces: the deferred
// install prompt and the best-effort share facility.
package platform

import "sync"

// InstallChoice is the user's answer to the native install prompt.
type InstallChoice string

const (
	InstallAccepted  InstallChoice = "accepted"
	InstallDismissed InstallChoice = "dismissed"
)

// Prompter triggers the platform's native install prompt and reports the
// user's choice.
type Prompter interface {
	Prompt() (InstallChoice, error)
}

// InstallPrompt holds the deferred install handle. The platform delivers it
// once via Capture; Prompt consumes it and clears the handle when the user
// accepts, so a second prompt is not possible after an install.
type InstallPrompt struct {
	mu     sync.Mutex
	handle Prompter
}

func NewInstallPrompt() *InstallPrompt {
	return &InstallPrompt{}
}

// Capture stores the deferred handle, replacing any previous one.
func (p *InstallPrompt) Capture(handle Prompter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handle = handle
}

// Available reports whether an install can currently be offered.
func (p *InstallPrompt) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle != nil
}

// Prompt invokes the native prompt. A nil-handle call reports dismissed; an
// accepted choice clears the handle.
func (p *InstallPrompt) Prompt() (InstallChoice, error) {
	p.mu.Lock()
	handle := p.handle
	p.mu.Unlock()

	if handle == nil {
		return InstallDismissed, nil
	}

	choice, err := handle.Prompt()
	if err != nil {
		return InstallDismissed, err
	}

	if choice == InstallAccepted {
		p.mu.Lock()
		if p.handle == handle {
			p.handle = nil
		}
		p.mu.Unlock()
	}

	return choice, nil
}
