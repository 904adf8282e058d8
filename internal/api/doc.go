// Package api handles incoming HTTP requests for the marketplace: user
// profiles, home listings, bookings and payment intents. Handlers decode
// the request, run one store or service call and encode its result; they
// translate errors to status codes through MapErrorToStatusCode.
package api
