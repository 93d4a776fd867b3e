package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"
)

type Provider string

const (
	ProviderVNPay Provider = "vnpay"
	ProviderMoMo  Provider = "momo"
)

var (
	ErrUnknownProvider  = errors.New("unknown payment provider")
	ErrMissingSignature = errors.New("signature field is missing")
	ErrInvalidSignature = errors.New("signature mismatch")
)

// signatureField names the parameter carrying the hash for each
// provider; it is excluded from the signed payload.
var signatureField = map[Provider]string{
	ProviderVNPay: "vnp_SecureHash",
	ProviderMoMo:  "signature",
}

func newMac(provider Provider, secret string) (hash.Hash, error) {
	switch provider {
	case ProviderVNPay:
		return hmac.New(sha512.New, []byte(secret)), nil
	case ProviderMoMo:
		return hmac.New(sha256.New, []byte(secret)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

// Sign computes the provider HMAC over the params, sorted by key and
// joined as key=value pairs.
func Sign(provider Provider, params map[string]string, secret string) (string, error) {
	mac, err := newMac(provider, secret)
	if err != nil {
		return "", err
	}

	sigField := signatureField[provider]
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == sigField || params[k] == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	mac.Write([]byte(strings.Join(pairs, "&")))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the provider signature and compares it to the one
// carried in params. Any missing or malformed field fails closed.
func Verify(provider Provider, params map[string]string, secret string) error {
	sigField, ok := signatureField[provider]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	got, ok := params[sigField]
	if !ok || got == "" {
		return ErrMissingSignature
	}
	if _, err := hex.DecodeString(strings.ToLower(got)); err != nil {
		return ErrInvalidSignature
	}

	want, err := Sign(provider, params, secret)
	if err != nil {
		return err
	}

	// Providers differ on hex casing, so compare case-insensitively.
	if !hmac.Equal([]byte(strings.ToLower(got)), []byte(want)) {
		return ErrInvalidSignature
	}
	return nil
}
