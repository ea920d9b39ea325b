//go:build !cgo

package store

const driverAvailable = false
