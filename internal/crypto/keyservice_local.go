package crypto

import (
	"bytes"
	"context"
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultLocalKeyCapacity bounds the number of private keys a
// LocalKeyService keeps.
const DefaultLocalKeyCapacity = 64

const symmetricKeySize = 32

// LocalKeyService is an in-process [KeyService] holding RSA private keys.
// It speaks the backend's sealing scheme: RSA-OAEP(SHA-1) wrapped keys and
// AES-256-CBC payloads with a 16-byte IV prefix and PKCS#7 padding.
//
// Keys are kept in a bounded LRU; the least recently used key is evicted
// once capacity is reached.
type LocalKeyService struct {
	keys *lru.Cache[string, *rsa.PrivateKey]
}

var _ KeyService = (*LocalKeyService)(nil)

// NewLocalKeyService returns an empty service holding up to capacity keys.
// A non-positive capacity means [DefaultLocalKeyCapacity].
func NewLocalKeyService(capacity int) (*LocalKeyService, error) {
	if capacity <= 0 {
		capacity = DefaultLocalKeyCapacity
	}
	keys, err := lru.New[string, *rsa.PrivateKey](capacity)
	if err != nil {
		return nil, fmt.Errorf("create key cache: %w", err)
	}
	return &LocalKeyService{keys: keys}, nil
}

// AddPrivateKey registers key under keyID, replacing any previous key.
func (s *LocalKeyService) AddPrivateKey(keyID string, key *rsa.PrivateKey) {
	s.keys.Add(keyID, key)
}

// AddPrivateKeyPEM parses a PKCS#1 or PKCS#8 PEM private key and registers
// it under keyID.
func (s *LocalKeyService) AddPrivateKeyPEM(keyID string, pemBytes []byte) error {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		s.AddPrivateKey(keyID, key)
		return nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return fmt.Errorf("private key %q is not RSA", keyID)
	}
	s.AddPrivateKey(keyID, key)
	return nil
}

// RemoveKey drops keyID from the service.
func (s *LocalKeyService) RemoveKey(keyID string) {
	s.keys.Remove(keyID)
}

func (s *LocalKeyService) DecryptAsymmetric(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := s.key(keyID)
	if err != nil {
		return nil, err
	}
	plain, err := rsa.DecryptOAEP(sha1.New(), nil, key, data, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap symmetric key: %w", err)
	}
	return plain, nil
}

func (s *LocalKeyService) DecryptSymmetric(ctx context.Context, key []byte, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(key) != symmetricKeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	if len(data) < 2*aes.BlockSize || len(data)%aes.BlockSize != 0 {
		return nil, errors.New("ciphertext is not a whole number of blocks")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv, ct := data[:aes.BlockSize], data[aes.BlockSize:]
	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	return pkcs7Unpad(plain)
}

func (s *LocalKeyService) SignAsymmetric(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := s.key(keyID)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(data)
	return rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
}

func (s *LocalKeyService) key(keyID string) (*rsa.PrivateKey, error) {
	key, ok := s.keys.Get(keyID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keyID)
	}
	return key, nil
}

// Seal produces the wire form of plaintext for pub: a fresh AES-256 key
// wrapped with RSA-OAEP(SHA-1), followed by IV and CBC ciphertext. It is
// the inverse of unsealing through a LocalKeyService holding the matching
// private key.
func Seal(pub *rsa.PublicKey, plaintext []byte) (string, error) {
	symmetricKey := make([]byte, symmetricKeySize)
	if _, err := rand.Read(symmetricKey); err != nil {
		return "", err
	}
	wrapped, err := rsa.EncryptOAEP(sha1.New(), rand.Reader, pub, symmetricKey, nil)
	if err != nil {
		return "", fmt.Errorf("wrap symmetric key: %w", err)
	}

	block, err := aes.NewCipher(symmetricKey)
	if err != nil {
		return "", err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err = rand.Read(iv); err != nil {
		return "", err
	}
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	raw := make([]byte, 0, len(wrapped)+len(iv)+len(ct))
	raw = append(raw, wrapped...)
	raw = append(raw, iv...)
	raw = append(raw, ct...)

	return NewEnvelopeLayout(nil).Encode(SealedEnvelope{CipherText: raw}), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
