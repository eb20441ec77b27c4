//go:build !freelist_strict

package freelist

const strict = false
