// Package consent gates all non-essential client-side persistence behind
// the user's recorded cookie consent.
//
// The consent record is a single JSON blob held by the client in the
// cookie_consent cookie: four category flags (necessary is always true), a
// consentGiven flag, and the last-updated timestamp. The Gate is the only
// path through which feature code writes gated cookies, so the policy —
// nothing non-essential is ever persisted without an explicit, current,
// affirmative flag for its category — holds by construction. The Analytics
// and Functional services layer on top and silently no-op when consent is
// absent.
package consent
