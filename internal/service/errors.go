package service

import "fmt"

var (
	ErrViewerNotFound  = fmt.Errorf("viewer not found")
	ErrTooManyViewers  = fmt.Errorf("too many viewers")
	ErrCannotListNodes = fmt.Errorf("cannot list nodes")
	ErrPanelAccess     = fmt.Errorf("panel api rejected credentials")
)
