// Package mongodb implements the store interfaces on top of MongoDB using the
// official Go driver. A single Client owns the long-lived connection pool; the
// stores share its *mongo.Database and address the homes, users and bookings
// collections by name.
package mongodb
