package domain

// Field names the handlers and stores rely on. Every other field of a
// document is opaque client data.
const (
	FieldID         = "_id"
	FieldEmail      = "email"
	FieldRole       = "role"
	FieldLocation   = "location"
	FieldHost       = "host"
	FieldGuestEmail = "guestEmail"

	// FieldHostEmail is the dotted path of a listing's owner email.
	FieldHostEmail = FieldHost + "." + FieldEmail
)

// RoleAdmin is the stored role value that grants access to admin routes.
const RoleAdmin = "admin"

// Document is a schema-less record as stored in a collection and as
// exchanged with clients. Homes, users and bookings are all documents.
type Document map[string]any

// String returns the value of key when it holds a string, or "".
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Email returns the document's email field, the natural key of a user.
func (d Document) Email() string {
	return d.String(FieldEmail)
}

// GuestEmail returns the email of the guest who made a booking.
func (d Document) GuestEmail() string {
	return d.String(FieldGuestEmail)
}

// HostEmail returns host.email of a listing, or "" when host is absent or not an object.
func (d Document) HostEmail() string {
	switch host := d[FieldHost].(type) {
	case Document:
		return host.Email()
	case map[string]any:
		return Document(host).Email()
	default:
		return ""
	}
}

// IsAdmin reports whether a user document carries the admin role.
func (d Document) IsAdmin() bool {
	return d.String(FieldRole) == RoleAdmin
}

// Without returns a shallow copy of d with the given keys removed.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
