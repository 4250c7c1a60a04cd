// Package service contains the site's use cases: accepting a contact
// submission (validate, archive, deliver) and assembling the resume from the
// current content. Services receive their collaborators through constructor
// injection and depend only on interfaces, never on SMTP or PostgreSQL
// details.
package service
