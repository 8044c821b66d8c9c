package websocket

import "github.com/gofiber/websocket/v2"

// ServeWs registers conn under scope and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, scope string) {
	client := &Client{Hub: hub, Conn: c, Scope: scope, Send: make(chan []byte, 16)}
	if !hub.Register(client) {
		return
	}

	go client.writePump()
	client.readPump()
}
