package lead

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tyltyhub/internal/pkg/leadform"
	"tyltyhub/internal/pkg/response"
	"tyltyhub/internal/pkg/validator"
)

type Handler struct {
	service    *Service
	production bool
}

// NewHandler creates the lead HTTP handler. production gates the listing
// endpoint, which must not be reachable on the public deployment.
func NewHandler(service *Service, production bool) *Handler {
	return &Handler{service: service, production: production}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/save-lead", h.SaveLead)
	rg.GET("/leads", h.ListLeads)
	rg.GET("/stats", h.Stats)
}

// SaveLead handles POST /api/save-lead.
func (h *Handler) SaveLead(c *gin.Context) {
	var req SaveLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, leadform.MsgRequired)
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.Fail(c, http.StatusBadRequest, leadform.MsgRequired)
		return
	}

	l, err := h.service.CreateLead(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Fail(c, http.StatusBadRequest, ve.Message())
		case errors.Is(err, ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, "Este e-mail já está cadastrado")
		default:
			log.Printf("save_lead storage error: %v", err)
			response.Fail(c, http.StatusInternalServerError, "Erro interno do servidor")
		}
		return
	}

	log.Printf("lead registered: %s (%s)", l.NomeCompleto, l.Email)
	response.OK(c, http.StatusOK, gin.H{
		"message": "Cadastro realizado com sucesso!",
		"leadId":  l.ID,
	})
}

// ListLeads handles GET /api/leads. Disabled in production.
func (h *Handler) ListLeads(c *gin.Context) {
	if h.production {
		response.Fail(c, http.StatusForbidden, "Endpoint não disponível em produção")
		return
	}

	leads, err := h.service.ListLeads(c.Request.Context())
	if err != nil {
		log.Printf("list_leads storage error: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Erro ao buscar dados")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"data":  leads,
		"total": len(leads),
	})
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(c *gin.Context) {
	total, err := h.service.CountLeads(c.Request.Context())
	if err != nil {
		log.Printf("stats storage error: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Erro ao buscar estatísticas")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"totalLeads": total})
}
