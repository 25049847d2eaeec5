// Package encryption seals short secrets, such as the session token kept in
// the settings file, with an AEAD cipher.
//
// Keys are passphrases; SHA-256 derives the 256-bit cipher key. Output is
// base64 of nonce||ciphertext.
//
//	enc, err := encryption.New("passphrase", encryption.WithAlgorithm(encryption.AlgorithmChaCha20))
//	sealed, err := enc.Encrypt(token)
//	token, err = enc.Decrypt(sealed)
package encryption
