package ports

// Event names pushed over the live connection.
const (
	EventNewComment   = "newComment"
	EventNotification = "notification"
)

// Notifier delivers events to live client connections. Delivery is
// best-effort and at-most-once per connection: neither method returns an
// error, and a unicast to a room nobody joined is silently dropped.
type Notifier interface {
	// BroadcastAll delivers the event to every connected client.
	BroadcastAll(event string, payload any)
	// NotifyUser delivers the event only to connections that explicitly
	// joined the room named after userID.
	NotifyUser(userID, event string, payload any)
}
