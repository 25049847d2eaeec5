// Package version reports build metadata of the picacg binary.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/kbukum/picacg/version.Version=1.2.0" ./cmd/picacg
//
// Anything left empty is read from the embedded VCS build settings.
package version
