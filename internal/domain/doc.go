// Package domain contains shared domain types used across entity sub-packages.
// Administrative units and address rendering live in domain/address; this
// root package holds the sentinel errors and validation types every layer
// checks against.
package domain
