//go:build !amd64 && !arm64

package fp

func init() {
	setScalarMode()
}
