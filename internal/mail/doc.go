// Package mail composes and sends the contact-form email over SMTP.
//
// One message is sent per submission: addressed to the visitor, with the
// site owner on Cc and as Reply-To, so both parties share a single thread.
// SMTP settings are read from the environment on every send.
package mail
