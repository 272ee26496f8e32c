package connectionhub

import (
	"sync"

	wsmodels "career-tools-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
)

type Provider interface {
	AddClient(clientID string, conn *websocket.Conn)
	DeleteClient(clientID string)
	SendMessage(msg wsmodels.ServerMessage)
	IsConnected(clientID string) bool
	Count() int
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[clientID]
}

func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	sess, ok := i.clients[clientID]
	delete(i.clients, clientID)
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
	// соединение освобождается после выхода из обработчика, ждём завершения отправки
	<-sess.done
}

func (i *impl) AddClient(clientID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if oldSess, ok := i.clients[clientID]; ok {
		oldSess.stop()
	}
	i.clients[clientID] = newSession(conn)
}

// SendMessage ставит сообщение в очередь сессии, порядок отправки сохраняется
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToClientID]
	i.mu.RUnlock()
	if ok {
		sess.enqueue(msg)
	}
}

func (i *impl) IsConnected(clientID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[clientID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.clients)
}
