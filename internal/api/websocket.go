package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/m-zayed5722/food-sense/internal/format"
	"github.com/m-zayed5722/food-sense/internal/models"
	"github.com/m-zayed5722/food-sense/internal/parser"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	wsReadLimit    = 64 * 1024
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// wsRequest is one live-parse frame from the client.
type wsRequest struct {
	Text string `json:"text"`
}

// wsResponse streams the parse result for one frame back to the client.
type wsResponse struct {
	Order      *models.Order `json:"order"`
	Summary    string        `json:"summary"`
	Restaurant string        `json:"restaurant,omitempty"`
	Confidence float64       `json:"confidence"`
}

// handleWebSocket runs a live parsing session: every text frame the client
// sends is parsed against the current catalog and the priced order is
// written straight back, which lets a UI preview the order as it is typed.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		index, rule := s.current()
		order, _ := rule.Parse(c.Request.Context(), req.Text)
		restaurant, confidence := index.Detect(parser.Normalize(req.Text))

		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(wsResponse{
			Order:      order,
			Summary:    format.Summary(order),
			Restaurant: restaurant,
			Confidence: confidence,
		}); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}
