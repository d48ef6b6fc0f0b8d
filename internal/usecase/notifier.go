package usecase

import "context"

// ArchiveEvent records an archive state change on a hierarchy node.
type ArchiveEvent struct {
	Resource   string
	ClubID     string
	ResourceID string
	Archived   bool
}

// EventNotifier pushes archive state changes to interested club endpoints.
// Implementations handle delivery failures themselves; a failed notification
// never rolls back the state change it describes.
type EventNotifier interface {
	NotifyArchiveChanged(ctx context.Context, event ArchiveEvent)
}

type noopEventNotifier struct{}

func (noopEventNotifier) NotifyArchiveChanged(context.Context, ArchiveEvent) {}

func NewNoopEventNotifier() EventNotifier {
	return noopEventNotifier{}
}
