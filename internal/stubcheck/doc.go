// Package stubcheck holds source checks on the forwarding entry points of
// package atshim. It has no non-test code.
package stubcheck
