package entity

// Tipos de notificación.
const (
	NotificationScheme   = "scheme"
	NotificationReminder = "reminder"
	NotificationSuccess  = "success"
	NotificationInfo     = "info"
)

// Notification aviso mostrado en la campana del portal.
type Notification struct {
	ID      string
	Type    string
	Title   string
	Message string
}
