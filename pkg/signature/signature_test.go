package signature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef":       "7",
		"vnp_Amount":       "50000000",
		"vnp_ResponseCode": "00",
	}

	sig, err := Sign(ProviderVNPay, params, "secret")
	assert.NoError(t, err)
	assert.Len(t, sig, 128) // hex-encoded SHA-512

	momoSig, err := Sign(ProviderMoMo, params, "secret")
	assert.NoError(t, err)
	assert.Len(t, momoSig, 64) // hex-encoded SHA-256

	_, err = Sign("paypal", params, "secret")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestSignIsOrderIndependent(t *testing.T) {
	a := map[string]string{"b": "2", "a": "1", "c": "3"}
	b := map[string]string{"c": "3", "a": "1", "b": "2"}

	sigA, err := Sign(ProviderMoMo, a, "secret")
	assert.NoError(t, err)
	sigB, err := Sign(ProviderMoMo, b, "secret")
	assert.NoError(t, err)
	assert.Equal(t, sigA, sigB)
}

func TestSignSkipsEmptyAndSignatureFields(t *testing.T) {
	base := map[string]string{"a": "1", "b": "2"}
	padded := map[string]string{"a": "1", "b": "2", "empty": "", "signature": "deadbeef"}

	sigBase, err := Sign(ProviderMoMo, base, "secret")
	assert.NoError(t, err)
	sigPadded, err := Sign(ProviderMoMo, padded, "secret")
	assert.NoError(t, err)
	assert.Equal(t, sigBase, sigPadded)
}

func TestVerify(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef":       "7",
		"vnp_Amount":       "50000000",
		"vnp_ResponseCode": "00",
	}
	sig, err := Sign(ProviderVNPay, params, "secret")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		params        map[string]string
		secret        string
		expectedError error
	}{
		{
			name: "Valid signature",
			params: map[string]string{
				"vnp_TxnRef": "7", "vnp_Amount": "50000000", "vnp_ResponseCode": "00",
				"vnp_SecureHash": sig,
			},
			secret: "secret",
		},
		{
			name: "Uppercase hex is accepted",
			params: map[string]string{
				"vnp_TxnRef": "7", "vnp_Amount": "50000000", "vnp_ResponseCode": "00",
				"vnp_SecureHash": strings.ToUpper(sig),
			},
			secret: "secret",
		},
		{
			name: "Missing signature fails closed",
			params: map[string]string{
				"vnp_TxnRef": "7", "vnp_Amount": "50000000", "vnp_ResponseCode": "00",
			},
			secret:        "secret",
			expectedError: ErrMissingSignature,
		},
		{
			name: "Tampered amount",
			params: map[string]string{
				"vnp_TxnRef": "7", "vnp_Amount": "1", "vnp_ResponseCode": "00",
				"vnp_SecureHash": sig,
			},
			secret:        "secret",
			expectedError: ErrInvalidSignature,
		},
		{
			name: "Wrong secret",
			params: map[string]string{
				"vnp_TxnRef": "7", "vnp_Amount": "50000000", "vnp_ResponseCode": "00",
				"vnp_SecureHash": sig,
			},
			secret:        "other-secret",
			expectedError: ErrInvalidSignature,
		},
		{
			name: "Non-hex signature fails closed",
			params: map[string]string{
				"vnp_TxnRef": "7", "vnp_Amount": "50000000", "vnp_ResponseCode": "00",
				"vnp_SecureHash": "not-hex-at-all",
			},
			secret:        "secret",
			expectedError: ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(ProviderVNPay, tt.params, tt.secret)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
