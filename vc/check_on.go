//go:build vccheck

package vc

// checked enables the contract assertions of the vccheck build.
const checked = true
