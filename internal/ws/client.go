package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 手机扫描端跨源访问
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client 单个 websocket 连接
type Client struct {
	hub  *Hub
	id   string
	conn *websocket.Conn
	send chan []byte
}

// inboundMessage 客户端指令
type inboundMessage struct {
	Type           string `json:"type"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	ParentSku      string `json:"parentSku,omitempty"`
	ProductName    string `json:"productName,omitempty"`
	OrderCode      string `json:"orderCode,omitempty"`
}

// readPump 读取并处理客户端指令
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		c.handle(msg)
	}
}

// handle 分发一条指令
// scan 的结果广播给所有连接：桌面仪表盘要实时看到手机端的扫描结果
func (c *Client) handle(msg inboundMessage) {
	engine := c.hub.engine

	switch msg.Type {
	case "scan":
		result := engine.Search(msg.TrackingNumber)
		c.hub.Broadcast(map[string]interface{}{
			"type":           "scan-result",
			"trackingNumber": msg.TrackingNumber,
			"results":        result.Results,
			"error":          result.Error,
			"courierStats":   result.CourierStats,
			"alreadyScanned": result.AlreadyScanned,
			"timestamp":      time.Now().Format(time.RFC3339),
		})

	case "save-order-code":
		if err := engine.Store().UpsertOrderCode(msg.ParentSku, msg.ProductName, msg.OrderCode); err != nil {
			log.Printf("ws save order code failed: %v", err)
			return
		}
		c.hub.Broadcast(map[string]interface{}{
			"type":      "order-code-saved",
			"parentSku": msg.ParentSku,
			"orderCode": msg.OrderCode,
		})

	case "get-order-codes":
		codes, err := engine.Store().ListOrderCodes()
		if err != nil {
			log.Printf("ws list order codes failed: %v", err)
			return
		}
		c.sendJSON(map[string]interface{}{
			"type":  "order-codes-list",
			"codes": codes,
		})

	case "reset-scanned":
		if err := engine.Store().ResetScanned(); err != nil {
			log.Printf("ws reset scanned failed: %v", err)
			return
		}
		c.hub.BroadcastCourierStats()

	case "refresh-files":
		c.hub.BroadcastFiles()
		c.hub.BroadcastCourierStats()
	}
}

// writePump 将队列中的消息写回连接并维持心跳
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// ServeWs 升级 HTTP 连接并接入 Hub
// 新连接立即收到当前文件列表与统计，与桌面端打开即有数据的体验一致
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  hub,
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, 32),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()

	client.sendJSON(map[string]interface{}{
		"type":  "files-loaded",
		"files": hub.engine.LoadedFiles(),
	})
	client.sendJSON(map[string]interface{}{
		"type":  "courier-stats",
		"stats": hub.engine.CourierStats(),
	})
}
