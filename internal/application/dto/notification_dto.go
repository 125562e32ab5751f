package dto

// NotificationResponse aviso de la campana.
type NotificationResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NotificationListResponse avisos del usuario.
type NotificationListResponse struct {
	Count int                    `json:"count"`
	Data  []NotificationResponse `json:"data"`
}
