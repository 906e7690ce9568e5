package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SignatureHeader is the header the form provider signs payloads with.
const SignatureHeader = "Typeform-Signature"

// VerifySignature checks the provider's HMAC-SHA256 signature over the raw
// request body. The header value is base64 with an optional "sha256="
// prefix. An empty secret disables verification.
func VerifySignature(secret, header string, body []byte) bool {
	if secret == "" {
		return true
	}

	provided := strings.TrimSpace(header)
	provided = strings.TrimPrefix(provided, "sha256=")
	decoded, err := base64.StdEncoding.DecodeString(provided)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}
