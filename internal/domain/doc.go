// Package domain contains the portfolio's content records (projects,
// academic history, experience, site settings), the assembled resume view,
// and the contact message with its validation rules. Content records are
// read-only display data decoded from JSON; nothing here touches I/O.
package domain
