//go:build freelist_strict

package freelist

// strict enables O(N) validation of keys passed to Free, Get and GetMut.
const strict = true
