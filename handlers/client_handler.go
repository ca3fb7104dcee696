package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ClientDesk/client-desk-backend/internal/utils"
	"github.com/ClientDesk/client-desk-backend/middleware"
	"github.com/ClientDesk/client-desk-backend/types"
)

// ClientHandler exposes the read-only client endpoints.
type ClientHandler struct {
	clientService ClientServiceInterface
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClientsHandler handles GET /clients. It returns a hypermedia list of
// links to the individual client resources.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	links := make([]types.LinkDTO, 0, len(clients))
	for _, client := range clients {
		title := client.Email
		if client.Name != nil {
			title = *client.Name
		}
		links = append(links, types.LinkDTO{
			Href:  utils.ResourceURL(c, "/clients/"+client.ID),
			Rel:   "client",
			Title: title,
		})
	}

	middleware.OK(c, links, &types.MetaExtras{
		Title: "All clients",
		Count: types.IntPtr(len(clients)),
	})
}

// GetClientHandler handles GET /clients/:id. Any service error is forwarded
// unchanged to the terminal error handler.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	id := c.Param("id")

	client, err := h.clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.OK(c, client, &types.MetaExtras{Title: "Client by id"})
}
