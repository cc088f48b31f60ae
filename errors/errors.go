package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrBlankText           = fmt.Errorf("text must not be blank")
	ErrBlankName           = fmt.Errorf("user name must not be blank")
	ErrBlankInterest       = fmt.Errorf("interest must not be blank")
	ErrUserNotFound        = fmt.Errorf("user not existing")
	ErrConversationMissing = fmt.Errorf("conversation ID missing")
)
