// Package core contains the canonical PayByPhone domain contracts, entities,
// configuration, and error envelopes. Transport adapters and the client build
// on this package; core must not depend on them.
package core
