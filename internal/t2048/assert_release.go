//go:build !t2048debug

package t2048

const debugChecks = false
