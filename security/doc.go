// Package security holds the transport security settings of the client.
//
// Certificate validation is on by default. The upstream deployment has been
// served with certificates that fail validation, so TLSConfig exposes an
// explicit TrustAllCertificates switch; it is never enabled implicitly.
//
//	cfg := security.TLSConfig{TrustAllCertificates: true}
//	tlsConfig, err := cfg.Build()
package security
