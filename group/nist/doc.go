// Package nist implements cryptographic groups and ciphersuites
// based on the NIST standards, using Go's built-in crypto library.
// That package's arithmetic is not constant time. This file is only
// built with the "vartime" build tag; the package's other files carry
// no build constraint.

// +build vartime

package nist
