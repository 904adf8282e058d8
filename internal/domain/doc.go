// Package domain contains the core business entities of the marketplace:
// schema-less documents for homes, users and bookings, the result shapes
// reported for store writes, and the domain errors shared across layers.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
