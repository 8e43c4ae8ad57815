//go:build !windows || !appx

package pathres

// packageDir is nil when packaged application lookup is not built in.
var packageDir func() (string, error)
