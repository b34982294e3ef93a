// Package ports defines the contracts between the application core and its
// adapters: repositories behind a unit of work, the token codec and the
// password hasher.
package ports
