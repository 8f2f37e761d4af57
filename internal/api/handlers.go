package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"nicaris/backoffice/config"
	"nicaris/backoffice/internal/auth"
	"nicaris/backoffice/internal/documents"
	"nicaris/backoffice/internal/listing"
	"nicaris/backoffice/internal/messages"
	"nicaris/backoffice/internal/models"
	"nicaris/backoffice/internal/ranking"
	"nicaris/backoffice/internal/session"
	"nicaris/backoffice/internal/submit"
)

// Handler holds every service the JSON API routes depend on.
type Handler struct {
	sessions  *session.Store
	verifier  auth.Verifier
	pipeline  *listing.Pipeline
	resolver  *listing.Resolver
	board     *ranking.Board
	submitter *submit.Submitter
	drafts    *submit.DraftStore
	documents *documents.Store
	messages  *messages.Store
	logger    *logrus.Logger
}

// Deps collects the handler's injected services.
type Deps struct {
	Sessions  *session.Store
	Verifier  auth.Verifier
	Pipeline  *listing.Pipeline
	Resolver  *listing.Resolver
	Board     *ranking.Board
	Submitter *submit.Submitter
	Drafts    *submit.DraftStore
	Documents *documents.Store
	Messages  *messages.Store
	Logger    *logrus.Logger
}

func NewHandler(deps Deps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Handler{
		sessions:  deps.Sessions,
		verifier:  deps.Verifier,
		pipeline:  deps.Pipeline,
		resolver:  deps.Resolver,
		board:     deps.Board,
		submitter: deps.Submitter,
		drafts:    deps.Drafts,
		documents: deps.Documents,
		messages:  deps.Messages,
		logger:    logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credential pair and opens a session. Every failure,
// unknown email or wrong password alike, gets the same answer.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son requeridos"})
		return
	}

	user, err := h.verifier.Verify(req.Email, req.Password)
	if err != nil {
		h.logger.WithField("email", req.Email).Warn("Rejected login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
		return
	}

	if err := h.sessions.Set(c.Writer, c.Request, user); err != nil {
		h.logger.WithError(err).Error("Failed to write session cookie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar sesión"})
		return
	}

	h.logger.WithFields(logrus.Fields{"user": user.ID, "role": user.Role}).Info("User signed in")
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logger.WithError(err).Error("Failed to clear session cookie")
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetSession returns the signed-in user bound by RequireSession.
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// GetNav returns the sidebar links the session role may see.
func (h *Handler) GetNav(c *gin.Context) {
	c.JSON(http.StatusOK, config.NavForRole(currentUser(c).Role))
}

// GetDashboardStats refreshes the snapshot and summarizes it. A failed
// refresh still answers from the previous snapshot, flagged stale.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stale := h.pipeline.Refresh(c.Request.Context()) != nil

	stats := listing.ComputeStats(h.pipeline.Snapshot())
	c.JSON(http.StatusOK, gin.H{"stats": stats, "stale": stale})
}

// GetProperties applies the request's view state to the listing snapshot.
// The view is built fresh from the query each time, so nothing leaks
// between clients; a request that changes a filter and sends no page
// naturally lands on page 1.
func (h *Handler) GetProperties(c *gin.Context) {
	if err := h.pipeline.Refresh(c.Request.Context()); err != nil {
		h.logger.WithError(err).Warn("Serving stale listing snapshot")
	}

	view := listing.NewView()
	view.Search = c.Query("search")
	view.Type = c.DefaultQuery("type", listing.FilterAll)
	view.Status = c.DefaultQuery("status", listing.FilterAll)
	view.Sort = c.DefaultQuery("sort", listing.SortDateDesc)
	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			view.Page = page
		}
	}

	c.JSON(http.StatusOK, h.pipeline.Apply(view))
}

// GetProperty resolves one listing by id against a fresh fetch.
func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.resolver.Resolve(c.Request.Context(), c.Param("id"))
	if errors.Is(err, listing.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Propiedad no encontrada"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve property")
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo cargar la propiedad"})
		return
	}
	c.JSON(http.StatusOK, property)
}

type attachmentPayload struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type createPropertyRequest struct {
	submit.PropertyForm
	Images     []attachmentPayload `json:"imageFiles"`
	Videos     []attachmentPayload `json:"videoFiles"`
	FloorPlans []attachmentPayload `json:"floorPlanFiles"`
}

func decodeAttachments(payloads []attachmentPayload) ([]submit.Attachment, error) {
	var out []submit.Attachment
	for _, p := range payloads {
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, submit.Attachment{Name: p.Name, MimeType: p.MimeType, Data: data})
	}
	return out, nil
}

// GetCaptadores returns the roster backing the form's captador select.
func (h *Handler) GetCaptadores(c *gin.Context) {
	c.JSON(http.StatusOK, config.Captadores)
}

// CreateProperty validates and forwards a new listing to the script
// endpoint. The captador must come from the roster, since the sheet keys
// submissions by that exact name. A successful submission clears the
// owner's draft.
func (h *Handler) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	if req.Captador != "" && !config.IsKnownCaptador(req.Captador) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []submit.FieldError{
			{Field: "captador", Message: "Captador no reconocido"},
		}})
		return
	}

	files := submit.Attachments{}
	var err error
	if files.Images, err = decodeAttachments(req.Images); err == nil {
		if files.Videos, err = decodeAttachments(req.Videos); err == nil {
			files.FloorPlans, err = decodeAttachments(req.FloorPlans)
		}
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Archivo adjunto ilegible"})
		return
	}

	err = h.submitter.Submit(c.Request.Context(), &req.PropertyForm, files)

	var verr *submit.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, submit.ErrRejected):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case err != nil:
		h.logger.WithError(err).Error("Property submission failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo enviar la propiedad"})
	default:
		if clearErr := h.drafts.Clear(currentUser(c).Email); clearErr != nil {
			h.logger.WithError(clearErr).Warn("Failed to clear draft after submission")
		}
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

type draftRequest struct {
	Form   submit.PropertyForm `json:"form"`
	Images []string            `json:"images"`
}

// SaveDraft stores the owner's current form state, unvalidated.
func (h *Handler) SaveDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	if err := h.drafts.Save(currentUser(c).Email, &req.Form, req.Images); err != nil {
		h.logger.WithError(err).Error("Failed to save draft")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el borrador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetDraft returns the owner's saved draft, if any.
func (h *Handler) GetDraft(c *gin.Context) {
	form, images, savedAt, err := h.drafts.Load(currentUser(c).Email)
	if errors.Is(err, submit.ErrNoDraft) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sin borrador guardado"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to load draft")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cargar el borrador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"form":    form,
		"images":  images,
		"savedAt": savedAt.Format(time.RFC3339),
	})
}

// GetRanking loads and ranks the captador leaderboard.
func (h *Handler) GetRanking(c *gin.Context) {
	entries, err := h.board.Load(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load ranking")
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo cargar el ranking"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetDocuments lists documents visible to the session role.
func (h *Handler) GetDocuments(c *gin.Context) {
	docs, err := h.documents.List(
		currentUser(c).Role,
		c.Query("search"),
		c.DefaultQuery("category", "all"),
	)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list documents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los documentos"})
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}

	categories, err := h.documents.Categories()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list document categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los documentos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs, "categories": categories})
}

// GetFAQs returns the help entries, filtered by search and category.
func (h *Handler) GetFAQs(c *gin.Context) {
	search := c.Query("search")
	category := c.DefaultQuery("category", "all")
	if search == "" && category == "all" {
		c.JSON(http.StatusOK, config.GetFAQs())
		return
	}
	c.JSON(http.StatusOK, config.SearchFAQs(search, category))
}

// GetContacts lists message contacts, most recent conversation first.
func (h *Handler) GetContacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.messages.Contacts(c.Query("search")))
}

// GetThread returns the conversation with one contact and marks it read.
func (h *Handler) GetThread(c *gin.Context) {
	thread, err := h.messages.Thread(c.Param("contact"))
	if errors.Is(err, messages.ErrUnknownContact) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contacto no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cargar la conversación"})
		return
	}
	c.JSON(http.StatusOK, thread)
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage appends a message to the contact's thread.
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El mensaje no puede estar vacío"})
		return
	}

	msg, err := h.messages.Send(c.Param("contact"), currentUser(c), req.Content)
	if errors.Is(err, messages.ErrUnknownContact) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contacto no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El mensaje no puede estar vacío"})
		return
	}
	c.JSON(http.StatusOK, msg)
}
