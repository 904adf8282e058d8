// Package events decouples the request path from its side effects.
//
// Handlers publish an Event after a write succeeds; subscribers such as the
// booking confirmation mailer register an EventHandler with the emitter and
// react on their own schedule.
package events
