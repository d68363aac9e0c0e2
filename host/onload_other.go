//go:build !js

package host

// OnLoad runs fn once the host has finished loading. Outside of a browser there's nothing to wait for, so fn runs immediately.
func OnLoad(fn func()) {
	NewLoadTrigger(fn).Signal()
}
