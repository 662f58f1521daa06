// Package domain defines the core domain models for sfsession.
//
// Domain models are pure value objects without IO dependencies:
//
//   - credential.go: the access token / instance URL pair
//   - errors.go: the AuthError taxonomy shared by all packages
//
// Everything that talks to the network lives elsewhere and reports its
// failures through the error values defined here.
package domain
