package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/storage"
	"github.com/BruksfildServices01/barbershop-admin/internal/usecase/review"
)

// PublicCatalog é a leitura (possivelmente em cache) do site público
type PublicCatalog interface {
	Services(ctx context.Context) ([]models.Service, error)
	ActiveBarbers(ctx context.Context) ([]models.Barber, error)
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	catalog PublicCatalog
	reviews *review.Moderate
	media   MediaStore
}

func NewPublicHandler(catalog PublicCatalog, reviews *review.Moderate, media MediaStore) *PublicHandler {
	return &PublicHandler{catalog: catalog, reviews: reviews, media: media}
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) Services(c *gin.Context) {
	services, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		respond(c, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	c.JSON(http.StatusOK, services)
}

type publicBarber struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Bio       string   `json:"bio"`
	PhotoURL  string   `json:"photo_url"`
	Rating    *float64 `json:"rating"`
}

// Barbers expõe só os ativos e sem dados internos (comissão, contatos)
func (h *PublicHandler) Barbers(c *gin.Context) {
	barbers, err := h.catalog.ActiveBarbers(c.Request.Context())
	if err != nil {
		respond(c, err, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]publicBarber, 0, len(barbers))
	for _, b := range barbers {
		photo := b.PhotoURL
		if photo == "" && h.media != nil {
			photo = h.media.URL(storage.KindBarbers, storage.BarberKey(b.ID))
		}
		out = append(out, publicBarber{
			ID:        b.ID,
			Name:      b.Name,
			Specialty: b.Specialty,
			Bio:       b.Bio,
			PhotoURL:  photo,
			Rating:    b.Rating,
		})
	}
	c.JSON(http.StatusOK, out)
}

type publicReview struct {
	ID         uint   `json:"id"`
	BarberID   uint   `json:"barber_id"`
	ClientName string `json:"client_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

// Reviews: só aprovadas, sem o e-mail do cliente
func (h *PublicHandler) Reviews(c *gin.Context) {
	approved := true
	reviews, err := h.reviews.List(c.Request.Context(), &approved, queryUint(c, "barber_id"))
	if err != nil {
		respond(c, err, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}

	out := make([]publicReview, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, publicReview{
			ID:         r.ID,
			BarberID:   r.BarberID,
			ClientName: r.ClientName,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt.Format("2006-01-02"),
		})
	}
	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// IMAGENS DO SITE
////////////////////////////////////////////////////////

// Site devolve as URLs fixas de hero e about, com cache-busting
func (h *PublicHandler) Site(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusOK, gin.H{"hero": nil, "about": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hero":  h.media.URL(storage.KindHero, "hero.jpg"),
		"about": h.media.URL(storage.KindAbout, "about.jpg"),
	})
}
