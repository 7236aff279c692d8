package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type Credential struct {
	Tenant string `json:"tenant"`
	Token  string `json:"token"`
}

// Generate computes the HMAC-SHA256 of tenant keyed with secret and returns
// the digest as 64 lowercase hex characters. The log ingestion service
// recomputes the same value when it validates the Authorization header, so
// the output depends on nothing but the two inputs.
func Generate(tenant, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(tenant))
	return hex.EncodeToString(mac.Sum(nil))
}

func NewCredential(tenant, secret string) Credential {
	return Credential{
		Tenant: tenant,
		Token:  Generate(tenant, secret),
	}
}
