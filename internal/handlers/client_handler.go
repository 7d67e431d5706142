package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/forms"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type ClientStore interface {
	GetAllClients(ctx context.Context, query string) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id uint) error
}

type ClientHandler struct {
	clients ClientStore
}

func NewClientHandler(clients ClientStore) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	clients, err := h.clients.GetAllClients(c.Request.Context(), query)
	if err != nil {
		respond(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	client, err := h.clients.GetClient(c.Request.Context(), id)
	if err != nil {
		respond(c, err, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in forms.ClientInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		respond(c, err, "invalid_client", "Dados inválidos.")
		return
	}

	var client models.Client
	in.ApplyTo(&client)
	if err := h.clients.CreateClient(c.Request.Context(), &client); err != nil {
		respond(c, err, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var in forms.ClientInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		respond(c, err, "invalid_client", "Dados inválidos.")
		return
	}

	client, err := h.clients.GetClient(c.Request.Context(), id)
	if err != nil {
		respond(c, err, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	in.ApplyTo(client)
	if err := h.clients.UpdateClient(c.Request.Context(), client); err != nil {
		respond(c, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.clients.DeleteClient(c.Request.Context(), id); err != nil {
		respond(c, err, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}
	c.Status(http.StatusNoContent)
}
