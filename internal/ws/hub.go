package ws

import (
	"encoding/json"
	"log"
	"sync"

	"spxscan/internal/service/recon"
)

// Hub 维护已连接的仪表盘/扫描端并向它们推送事件
// 推送是锦上添花：序列化失败或单个连接阻塞都不影响引擎本身
type Hub struct {
	engine *recon.Engine

	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

// NewHub 创建 Hub
func NewHub(engine *recon.Engine) *Hub {
	return &Hub{
		engine:     engine,
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Run 运行 Hub 主循环，需在独立 goroutine 中调用
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			log.Printf("ws client connected: %s", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("ws client disconnected: %s", client.id)

		case message := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 发送队列满的连接直接放弃这条消息
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast 向所有连接推送一条事件
func (h *Hub) Broadcast(event map[string]interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws broadcast marshal failed: %v", err)
		return
	}
	h.broadcast <- data
}

// BroadcastCourierStats 推送最新快递商统计
func (h *Hub) BroadcastCourierStats() {
	h.Broadcast(map[string]interface{}{
		"type":  "courier-stats",
		"stats": h.engine.CourierStats(),
	})
}

// BroadcastFiles 推送当前文件列表
func (h *Hub) BroadcastFiles() {
	h.Broadcast(map[string]interface{}{
		"type":  "files-loaded",
		"files": h.engine.LoadedFiles(),
	})
}
