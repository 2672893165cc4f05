// Package token implements compact HMAC-signed payload tokens used for
// password reset links and quote share links. Tokens carry their payload,
// so no server-side token storage is required; validity is enforced by
// signature check plus whatever expiry field the payload itself carries.
package token
