package entity

import "time"

// OrderStatusRequested estado inicial de todo pedido; el servidor lo impone al crear.
const OrderStatusRequested = "Pedido solicitado"

// Order pedido de un cliente. UserID lo asigna el servidor (el creador).
type Order struct {
	ID        int64
	UserID    int64
	Comment   string
	Delivery  bool
	Location  string
	Status    string
	Active    bool
	CreatedAt time.Time
}
