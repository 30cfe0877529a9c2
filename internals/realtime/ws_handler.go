// file: internals/realtime/ws_handler.go
package realtime

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	userModel "kampusku_backend/internals/features/users/model"
)

// Pesan masuk dari client (join_room / leave_room / typing).
type clientMessage struct {
	Event    string `json:"event"`
	Room     string `json:"room"`
	IsTyping bool   `json:"is_typing"`
}

// RegisterWebsocket memasang endpoint /ws.
// Auth dilakukan SEBELUM upgrade: token dari query ?token=, header
// Authorization, atau cookie access_token. Gagal auth → koneksi ditolak,
// tidak ada orkestrasi retry di server (client reconnect sendiri).
func RegisterWebsocket(app *fiber.App, db *gorm.DB, hub *Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		userID, err := authenticateWS(c)
		if err != nil {
			return err
		}

		// Resolve identitas dari directory (role/department/year menentukan room)
		var u userModel.UserModel
		if err := db.Where("user_id = ? AND user_is_active = TRUE", userID).First(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
		}

		c.Locals("ws_user_id", u.UserID.String())
		c.Locals("ws_user_name", u.UserName)
		c.Locals("ws_role", u.UserRole)
		c.Locals("ws_department", u.UserDepartment)
		if u.UserYear != nil {
			c.Locals("ws_year", *u.UserYear)
		} else {
			c.Locals("ws_year", 0)
		}
		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		client := NewClient(
			conn,
			conn.Locals("ws_user_id").(string),
			conn.Locals("ws_user_name").(string),
			conn.Locals("ws_role").(string),
			conn.Locals("ws_department").(string),
			conn.Locals("ws_year").(int),
		)

		hub.Register(client)
		log.Printf("🔗 WS connect: %s (%s)", client.UserName, client.Role)

		defer func() {
			hub.Unregister(client)
			_ = conn.Close()
			log.Printf("🔌 WS disconnect: %s", client.UserName)
		}()

		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}

			switch msg.Event {
			case "join_room":
				hub.Join(client, msg.Room)
			case "leave_room":
				hub.Leave(client, msg.Room)
			case "typing":
				hub.EmitToRoomExcept(msg.Room, client, EventUserTyping, TypingPayload{
					UserID:   client.UserID,
					UserName: client.UserName,
					IsTyping: msg.IsTyping,
				})
			}
		}
	}))
}

func authenticateWS(c *fiber.Ctx) (uuid.UUID, error) {
	tok := strings.TrimSpace(c.Query("token"))
	if tok == "" {
		auth := strings.TrimSpace(c.Get("Authorization"))
		if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tok = fields[1]
		}
	}
	if tok == "" {
		tok = c.Cookies("access_token")
	}
	if tok == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication failed")
	}

	if exp, ok := claims["exp"].(float64); ok && time.Now().UTC().After(time.Unix(int64(exp), 0)) {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token expired")
	}

	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return userID, nil
}
