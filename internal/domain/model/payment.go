package model

import "encoding/json"

// PaymentInit is the successful result of a gateway transaction
// initialization. Raw preserves the gateway payload verbatim for the HTTP
// response.
type PaymentInit struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Raw              json.RawMessage
}
