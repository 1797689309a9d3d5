package usecases

import "helpdesk/internal/application/ticket/dto"

// DocumentRenderer produces the printable artifact for a ticket and
// returns its absolute path.
type DocumentRenderer interface {
	Render(snap dto.DocumentSnapshot) (string, error)
}

// NotificationDispatcher delivers a single notification message. An
// empty attachment path means no attachment.
type NotificationDispatcher interface {
	Send(subject, body string, recipients []string, attachmentPath string) error
}
