package socket

// Broadcaster provides high-level methods for broadcasting events to the
// admin dashboard feed.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// ============================================
// Notification Broadcasting
// ============================================

// SendNotification pushes a notification feed entry to connected dashboards.
func (b *Broadcaster) SendNotification(notification map[string]interface{}) {
	b.hub.Broadcast(MessageNotification, notification)
}

// SendNotificationDismissed tells dashboards a notification was dismissed.
func (b *Broadcaster) SendNotificationDismissed(id string) {
	b.hub.Broadcast(MessageNotificationDismissed, map[string]interface{}{"id": id})
}

// ============================================
// Inbound Message Broadcasting
// ============================================

// BroadcastContactReceived announces a new contact form submission.
func (b *Broadcaster) BroadcastContactReceived(message map[string]interface{}) {
	b.hub.Broadcast(MessageContactReceived, message)
}

// BroadcastRequestReceived announces a new custom project request.
func (b *Broadcaster) BroadcastRequestReceived(request map[string]interface{}) {
	b.hub.Broadcast(MessageRequestReceived, request)
}

// ============================================
// Portfolio Broadcasting
// ============================================

// BroadcastProjectCreated announces a new portfolio project.
func (b *Broadcaster) BroadcastProjectCreated(project map[string]interface{}) {
	b.hub.Broadcast(MessageProjectCreated, project)
}

// BroadcastProjectUpdated announces a portfolio project change.
func (b *Broadcaster) BroadcastProjectUpdated(project map[string]interface{}) {
	b.hub.Broadcast(MessageProjectUpdated, project)
}

// BroadcastProjectDeleted announces a portfolio project removal.
func (b *Broadcaster) BroadcastProjectDeleted(projectID string) {
	b.hub.Broadcast(MessageProjectDeleted, map[string]interface{}{"id": projectID})
}
