// Package store defines the persistence interfaces used by the service layer.
// The only persisted entity is the optional archive of contact submissions;
// site content itself is read from JSON files and never stored here.
package store
