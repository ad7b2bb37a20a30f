// Package types defines the typed identifiers, entity value types,
// repository contract, and standard error values for the Stowr storage
// layer. Frontends depend on this package only; concrete backing stores
// live under internal/ and are wired through pkg/stowr.
package types
