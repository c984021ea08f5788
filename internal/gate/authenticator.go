package gate

import "context"

// Unavailable is the Authenticator for platforms without a biometric
// surface. Capability reports none, so the gate never routes through it.
type Unavailable struct{}

func (Unavailable) Capability() Capability {
	return CapabilityNone
}

func (Unavailable) Authenticate(context.Context, string, string) (bool, error) {
	return false, nil
}
