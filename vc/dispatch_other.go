//go:build !amd64 && !arm64

package vc

func detectCPU() (DispatchLevel, int) {
	return DispatchScalar, 16
}
